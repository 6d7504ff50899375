package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
//
// borrowings.item_id deliberately carries no foreign key: deleting a catalog
// item keeps its borrowing history, and the report join skips the dangling
// rows.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS logistics (
    id          INTEGER PRIMARY KEY,
    item_name   TEXT,
    quantity    INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    description TEXT,
    image       BLOB,
    image_mime  TEXT
);

CREATE TABLE IF NOT EXISTS borrowings (
    id            INTEGER PRIMARY KEY,
    item_id       INTEGER NOT NULL,
    borrower_name TEXT NOT NULL,
    quantity      INTEGER NOT NULL CHECK (quantity > 0),
    borrow_date   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS revoked_sessions (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: index for the recent-borrowings report.
	`CREATE INDEX IF NOT EXISTS idx_borrowings_borrow_date
	     ON borrowings(borrow_date)`,
}

// Migrate creates all tables and runs the schema migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
