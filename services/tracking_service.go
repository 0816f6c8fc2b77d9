package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/boxee-legacy-api/models"
	"github.com/blogem/boxee-legacy-api/repositories"
)

// ErrTrackingDisabled is returned by the ledger reports when tracking is off
var ErrTrackingDisabled = errors.New("request tracking is disabled")

// TrackingService interface defines request ledger business logic
type TrackingService interface {
	Enabled() bool
	Record(ctx context.Context, clientAddress, endpoint string) error
	ListAll(ctx context.Context) ([]models.TrackedRequest, error)
	RecentDistinctIPs(ctx context.Context, window time.Duration) (*models.RecentIPReport, error)
}

// trackingService implements TrackingService interface
type trackingService struct {
	requestRepo repositories.RequestRepository
	enabled     bool
	now         func() time.Time
}

// NewTrackingService creates a new tracking service
func NewTrackingService(requestRepo repositories.RequestRepository, enabled bool) TrackingService {
	return NewTrackingServiceWithClock(requestRepo, enabled, time.Now)
}

// NewTrackingServiceWithClock creates a tracking service reading time from now
func NewTrackingServiceWithClock(requestRepo repositories.RequestRepository, enabled bool, now func() time.Time) TrackingService {
	return &trackingService{
		requestRepo: requestRepo,
		enabled:     enabled,
		now:         now,
	}
}

// Enabled reports whether observations are being recorded
func (s *trackingService) Enabled() bool {
	return s.enabled
}

// Record stores the observation at the current time; a no-op when tracking is off
func (s *trackingService) Record(ctx context.Context, clientAddress, endpoint string) error {
	if !s.enabled {
		return nil
	}

	if err := s.requestRepo.Record(ctx, clientAddress, endpoint, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to track request: %w", err)
	}

	return nil
}

// ListAll returns every ledger row
func (s *trackingService) ListAll(ctx context.Context) ([]models.TrackedRequest, error) {
	if !s.enabled {
		return nil, ErrTrackingDisabled
	}

	rows, err := s.requestRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked requests: %w", err)
	}

	return rows, nil
}

// RecentDistinctIPs returns the distinct client addresses seen within window (24h when zero)
func (s *trackingService) RecentDistinctIPs(ctx context.Context, window time.Duration) (*models.RecentIPReport, error) {
	if !s.enabled {
		return nil, ErrTrackingDisabled
	}

	span := models.LastWindow(s.now().UTC(), window)

	addresses, err := s.requestRepo.GetDistinctAddressesSince(ctx, span.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent addresses: %w", err)
	}

	return &models.RecentIPReport{
		Since:     span.Start,
		Addresses: dedupe(addresses),
	}, nil
}

// dedupe drops repeated addresses, keeping first-seen order
func dedupe(addresses []string) []string {
	seen := make(map[string]bool, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}
