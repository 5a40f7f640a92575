// Package sqlite is the embedded storage backend. It mirrors the postgres
// repositories over a single database file, which keeps local development
// and single-office deployments free of an external database server.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens the database file, creating its directory if needed, and
// verifies the connection. busy_timeout keeps concurrent writers queued
// instead of failing fast with a locked-database error; the sqlite time
// format stores timestamps in a fixed layout that compares correctly in
// range predicates.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite",
		path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return db, nil
}
