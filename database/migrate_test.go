package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabaseAppliesMigrationsOnce(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "ledger.db")

	db, err := OpenDB(dsn)
	require.NoError(t, err)
	defer db.Close()

	applied, err := RunMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_tracked_requests"}, applied)

	// Second run is a no-op
	applied, err = RunMigrations(db)
	require.NoError(t, err)
	assert.Empty(t, applied)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tracked_requests").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestLedgerUniqueIndex(t *testing.T) {
	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer db.Close()

	insert := "INSERT INTO tracked_requests (client_address, endpoint, last_seen) VALUES ('1.2.3.4', '/', CURRENT_TIMESTAMP)"
	_, err = db.Exec(insert)
	require.NoError(t, err)

	_, err = db.Exec(insert)
	assert.Error(t, err, "duplicate (client_address, endpoint) must be rejected")
}

func TestWithBusyTimeout(t *testing.T) {
	assert.Equal(t, "ledger.db?_busy_timeout=5000", withBusyTimeout("ledger.db"))
	assert.Equal(t, "file:ledger.db?cache=shared&_busy_timeout=5000", withBusyTimeout("file:ledger.db?cache=shared"))
	assert.Equal(t, "ledger.db?_busy_timeout=100", withBusyTimeout("ledger.db?_busy_timeout=100"))
}
