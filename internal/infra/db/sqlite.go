package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// OpenSQLite opens the local cart database. ":memory:" is accepted for tests.
func OpenSQLite(path string) (*sql.DB, func(), error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// modernc sqlite is safe for concurrent use but only one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to configure sqlite: %w", err)
	}

	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}
