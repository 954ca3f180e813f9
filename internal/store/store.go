// Package store is the relational storage collaborator of the search core.
// It owns the SQLite connection, the monument schema and the row-to-struct
// mapping; the search pipeline only ever sees typed model values coming out
// of this package.
//
// The dataset is read-only at query time. One *sql.DB is opened at process
// start and shared for the process lifetime; database/sql serializes access
// for concurrent callers.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/sirupsen/logrus"
)

// Store provides read access to the monument dataset. It implements the
// services.MonumentStore interface.
type Store struct {
	db     *sql.DB
	logger logrus.FieldLogger
}

// Open opens the SQLite database at the given path and verifies the
// connection. A failure here is fatal to the process: there is no recovery
// path for a dataset that cannot be opened.
func Open(path string, logger logrus.FieldLogger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database at %s: %w", path, err)
	}

	s := NewWithDB(db, logger)
	s.logger.WithField("path", path).Debug("monument database opened")
	return s, nil
}

// NewWithDB wraps an already-open database handle. Used by tests and by
// callers that manage the connection themselves.
func NewWithDB(db *sql.DB, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{db: db, logger: logger}
}

// DB exposes the underlying handle for schema setup.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
