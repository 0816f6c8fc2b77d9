package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/blogem/boxee-legacy-api/database"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test_ledger.db")

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRequestRepositoryRecordUpserts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(90 * time.Minute)

	// Test first sighting creates a row
	if err := repo.Record(ctx, "1.2.3.4", "/api/login", first); err != nil {
		t.Fatalf("Failed to record request: %v", err)
	}

	created, err := repo.GetByPair(ctx, "1.2.3.4", "/api/login")
	if err != nil {
		t.Fatalf("Failed to get recorded request: %v", err)
	}

	if created.ID == 0 {
		t.Error("Expected row ID to be set after creation")
	}

	// Test repeat sighting updates last_seen in place
	if err := repo.Record(ctx, "1.2.3.4", "/api/login", later); err != nil {
		t.Fatalf("Failed to record repeat request: %v", err)
	}

	updated, err := repo.GetByPair(ctx, "1.2.3.4", "/api/login")
	if err != nil {
		t.Fatalf("Failed to get updated request: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("Expected ID %d to be kept, got %d", created.ID, updated.ID)
	}

	if !updated.LastSeen.Equal(later) {
		t.Errorf("Expected last_seen %v, got %v", later, updated.LastSeen)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count requests: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected 1 ledger row, got %d", count)
	}
}

func TestRequestRepositoryDistinguishesPairs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	pairs := [][2]string{
		{"1.2.3.4", "/"},
		{"1.2.3.4", "/api/login"},
		{"5.6.7.8", "/"},
	}
	for _, p := range pairs {
		if err := repo.Record(ctx, p[0], p[1], now); err != nil {
			t.Fatalf("Failed to record %v: %v", p, err)
		}
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all requests: %v", err)
	}

	if len(all) != 3 {
		t.Fatalf("Expected 3 ledger rows, got %d", len(all))
	}

	// Storage order follows insertion
	for i, p := range pairs {
		if all[i].ClientAddress != p[0] || all[i].Endpoint != p[1] {
			t.Errorf("Row %d: expected %v, got %s %s", i, p, all[i].ClientAddress, all[i].Endpoint)
		}
	}

	if _, err := repo.GetByPair(ctx, "9.9.9.9", "/"); err == nil {
		t.Error("Expected error for unknown pair")
	}
}

func TestRequestRepositoryDistinctAddressesSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	records := []struct {
		address  string
		endpoint string
		at       time.Time
	}{
		{"1.2.3.4", "/", now.Add(-time.Hour)},
		{"1.2.3.4", "/api/login", now.Add(-2 * time.Hour)},
		{"5.6.7.8", "/", now.Add(-23 * time.Hour)},
		{"9.9.9.9", "/", now.Add(-48 * time.Hour)},
	}
	for _, rec := range records {
		if err := repo.Record(ctx, rec.address, rec.endpoint, rec.at); err != nil {
			t.Fatalf("Failed to record request: %v", err)
		}
	}

	addresses, err := repo.GetDistinctAddressesSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Failed to get recent addresses: %v", err)
	}

	if len(addresses) != 2 {
		t.Fatalf("Expected 2 distinct recent addresses, got %v", addresses)
	}

	if addresses[0] != "1.2.3.4" || addresses[1] != "5.6.7.8" {
		t.Errorf("Unexpected addresses: %v", addresses)
	}
}

func TestRequestRepositoryConcurrentFirstSighting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()
	base := time.Now().UTC()

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Record(ctx, "10.0.0.1", "/dlink.dsm380/", base.Add(time.Duration(i)*time.Second))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Concurrent record failed: %v", err)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count requests: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected concurrent sightings to converge on 1 row, got %d", count)
	}

	row, err := repo.GetByPair(ctx, "10.0.0.1", "/dlink.dsm380/")
	if err != nil {
		t.Fatalf("Failed to get request: %v", err)
	}

	// Whichever writer committed last wins; it must be one of the submitted times
	window := fmt.Sprintf("[%v, %v]", base, base.Add(writers*time.Second))
	if row.LastSeen.Before(base) || row.LastSeen.After(base.Add(writers*time.Second)) {
		t.Errorf("Expected last_seen within %s, got %v", window, row.LastSeen)
	}
}
