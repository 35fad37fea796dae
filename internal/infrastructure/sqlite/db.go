package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	username TEXT NOT NULL DEFAULT '' UNIQUE,
	password TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS movie (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	year TEXT NOT NULL
);
`

const dropSchema = `
DROP TABLE IF EXISTS movie;
DROP TABLE IF EXISTS user;
`

type DB struct {
	*sqlx.DB
}

// New opens the SQLite database at dbPath. Schema creation is owned by the
// maintenance commands (initdb/forge), not by the connection.
func New(dbPath string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// One pooled connection: the driver serializes writes anyway, and
	// :memory: databases are per-connection.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency (allows concurrent reads/writes)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set busy timeout to handle concurrent requests
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return &DB{db}, nil
}

// CreateSchema creates the user and movie tables if they do not exist.
func (db *DB) CreateSchema() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DropSchema drops the user and movie tables.
func (db *DB) DropSchema() error {
	if _, err := db.Exec(dropSchema); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
