package models

import (
	"fmt"
	"time"
)

// TrackedRequest is one ledger row: the last time a client address hit an endpoint
type TrackedRequest struct {
	ID            int64     `json:"id" db:"id"`
	ClientAddress string    `json:"client_address" db:"client_address"`
	Endpoint      string    `json:"endpoint" db:"endpoint"`
	LastSeen      time.Time `json:"last_seen" db:"last_seen"`
}

// String renders the row as "<id> <client_address> <endpoint> <last_seen>"
func (t TrackedRequest) String() string {
	return fmt.Sprintf("%d %s %s %s", t.ID, t.ClientAddress, t.Endpoint, FormatLedgerTime(t.LastSeen))
}

// RecentIPReport lists the distinct client addresses seen inside a window
type RecentIPReport struct {
	Since     time.Time `json:"since"`
	Addresses []string  `json:"addresses"`
}

// Total returns the number of distinct addresses in the report
func (r RecentIPReport) Total() int {
	return len(r.Addresses)
}
