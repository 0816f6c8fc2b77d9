package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// busyTimeoutMillis is how long a writer waits on a locked database
const busyTimeoutMillis = 5000

// OpenDB opens the SQLite database behind dataSourceName and checks the connection
func OpenDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", withBusyTimeout(dataSourceName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection serializes writers; the ledger is tiny
	db.SetMaxOpenConns(1)

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(dataSourceName string) (*sql.DB, error) {
	db, err := OpenDB(dataSourceName)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if _, err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// withBusyTimeout appends the driver's busy timeout option unless the DSN sets one
func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") || strings.Contains(dsn, "_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", dsn, sep, busyTimeoutMillis)
}
