package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/boxee-legacy-api/models"
)

// RequestRepository persists the request ledger
type RequestRepository interface {
	Record(ctx context.Context, clientAddress, endpoint string, at time.Time) error
	GetByPair(ctx context.Context, clientAddress, endpoint string) (*models.TrackedRequest, error)
	GetAll(ctx context.Context) ([]models.TrackedRequest, error)
	GetDistinctAddressesSince(ctx context.Context, since time.Time) ([]string, error)
	Count(ctx context.Context) (int, error)
}

// requestRepository implements RequestRepository on SQLite
type requestRepository struct {
	db *sql.DB
}

// NewRequestRepository creates a new request ledger repository
func NewRequestRepository(db *sql.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Record upserts the (clientAddress, endpoint) row, overwriting last_seen.
// The unique index turns a concurrent first insert into an update.
func (r *requestRepository) Record(ctx context.Context, clientAddress, endpoint string, at time.Time) error {
	query := `
		INSERT INTO tracked_requests (client_address, endpoint, last_seen)
		VALUES (?, ?, ?)
		ON CONFLICT (client_address, endpoint)
		DO UPDATE SET last_seen = excluded.last_seen
	`

	if _, err := r.db.ExecContext(ctx, query, clientAddress, endpoint, at.UTC()); err != nil {
		return fmt.Errorf("failed to record request %s %s: %w", clientAddress, endpoint, err)
	}

	return nil
}

// GetByPair retrieves the ledger row for one client/endpoint pair
func (r *requestRepository) GetByPair(ctx context.Context, clientAddress, endpoint string) (*models.TrackedRequest, error) {
	query := `
		SELECT id, client_address, endpoint, last_seen
		FROM tracked_requests
		WHERE client_address = ? AND endpoint = ?
	`

	var row models.TrackedRequest
	err := r.db.QueryRowContext(ctx, query, clientAddress, endpoint).Scan(
		&row.ID,
		&row.ClientAddress,
		&row.Endpoint,
		&row.LastSeen,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tracked request %s %s not found", clientAddress, endpoint)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked request: %w", err)
	}

	return &row, nil
}

// GetAll retrieves every ledger row in storage order
func (r *requestRepository) GetAll(ctx context.Context) ([]models.TrackedRequest, error) {
	query := `
		SELECT id, client_address, endpoint, last_seen
		FROM tracked_requests
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracked requests: %w", err)
	}
	defer rows.Close()

	var requests []models.TrackedRequest
	for rows.Next() {
		var row models.TrackedRequest
		err := rows.Scan(
			&row.ID,
			&row.ClientAddress,
			&row.Endpoint,
			&row.LastSeen,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tracked request: %w", err)
		}
		requests = append(requests, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracked requests: %w", err)
	}

	return requests, nil
}

// GetDistinctAddressesSince returns each client address seen at or after since
func (r *requestRepository) GetDistinctAddressesSince(ctx context.Context, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT client_address
		FROM tracked_requests
		WHERE last_seen >= ?
		ORDER BY client_address ASC
	`

	rows, err := r.db.QueryContext(ctx, query, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query recent addresses: %w", err)
	}
	defer rows.Close()

	var addresses []string
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent addresses: %w", err)
	}

	return addresses, nil
}

// Count returns the number of ledger rows
func (r *requestRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tracked_requests").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tracked requests: %w", err)
	}
	return count, nil
}
