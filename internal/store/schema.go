package store

import (
	"context"
	"fmt"
)

// schema is the monument dataset layout. Monuments join addresses (which
// join districts) and monument types directly, and participants through the
// monument_participants relation.
const schema = `
CREATE TABLE IF NOT EXISTS districts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS addresses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	street TEXT NOT NULL,
	house_number TEXT,
	district_id INTEGER NOT NULL REFERENCES districts(id)
);

CREATE TABLE IF NOT EXISTS monument_types (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS participants (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	role TEXT
);

CREATE TABLE IF NOT EXISTS monuments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	type_id INTEGER NOT NULL REFERENCES monument_types(id),
	address_id INTEGER NOT NULL REFERENCES addresses(id),
	construction_year INTEGER,
	latitude REAL,
	longitude REAL
);

CREATE TABLE IF NOT EXISTS monument_participants (
	monument_id INTEGER NOT NULL REFERENCES monuments(id),
	participant_id INTEGER NOT NULL REFERENCES participants(id),
	PRIMARY KEY (monument_id, participant_id)
);

CREATE INDEX IF NOT EXISTS idx_monuments_name ON monuments(name);
CREATE INDEX IF NOT EXISTS idx_addresses_street ON addresses(street);
CREATE INDEX IF NOT EXISTS idx_participants_name ON participants(name);
`

// InitSchema creates the monument tables if they do not exist yet.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
