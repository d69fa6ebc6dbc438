package vector

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"
)

// OpenMode controls what happens to existing documents when a store is
// opened over a database.
type OpenMode int

const (
	// ResetOnOpen drops the documents table and recreates it empty. Data
	// written by earlier runs against the same file is discarded.
	ResetOnOpen OpenMode = iota
	// KeepOnOpen creates the documents table only when it is missing.
	KeepOnOpen
)

// String returns the config name of the mode.
func (m OpenMode) String() string {
	switch m {
	case ResetOnOpen:
		return "reset"
	case KeepOnOpen:
		return "keep"
	}
	return "unknown"
}

// ParseOpenMode parses "reset" or "keep"; an empty string selects ResetOnOpen.
func ParseOpenMode(name string) (OpenMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reset":
		return ResetOnOpen, nil
	case "keep":
		return KeepOnOpen, nil
	}
	return ResetOnOpen, errors.Errorf("vector: unknown open mode %q", name)
}

const dropDocuments = `DROP TABLE IF EXISTS documents`

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    text TEXT NOT NULL UNIQUE,
    vector BLOB NOT NULL
);
`

// EnsureSchema creates the documents table in the provided database if it
// does not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, documentsSchema)
	return err
}

// ResetSchema drops the documents table, if any, and creates it empty. Both
// statements run in one transaction.
func ResetSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, dropDocuments); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, documentsSchema); err != nil {
		return err
	}
	return tx.Commit()
}

// ApplySchema prepares the documents table according to mode.
func ApplySchema(ctx context.Context, db *sql.DB, mode OpenMode) error {
	switch mode {
	case ResetOnOpen:
		return ResetSchema(ctx, db)
	case KeepOnOpen:
		return EnsureSchema(ctx, db)
	}
	return errors.Errorf("vector: unsupported open mode %d", int(mode))
}
