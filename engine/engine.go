package engine

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Memory is the DSN of a private in-memory database.
const Memory = ":memory:"

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./db.sqlite". For in-memory
// databases, pass ":memory:". The pool is limited to one connection: the
// database has a single owner, and every connection to ":memory:" would
// otherwise see its own empty database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Pragmas holds the connection pragmas applied to file databases.
type Pragmas struct {
	WAL           bool
	BusyTimeoutMS int
}

// OpenFile opens the database at path, creating its parent directory when
// missing, and verifies the file is usable. The handle is closed on every
// failure path.
func OpenFile(ctx context.Context, path string, pragmas Pragmas) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("engine: database path is empty")
	}
	if !IsMemory(path) {
		if err := ensureParentDir(ctx, path); err != nil {
			return nil, err
		}
	}
	dsn := EnsurePragmas(path, pragmas.WAL, pragmas.BusyTimeoutMS)
	db, err := Open(dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "engine: open %s", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "engine: open %s", path)
	}
	return db, nil
}

func ensureParentDir(ctx context.Context, path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, "engine: resolve %s", path)
	}
	fs := afs.New()
	exists, err := fs.Exists(ctx, dir)
	if err != nil {
		return errors.Wrapf(err, "engine: check %s", dir)
	}
	if exists {
		return nil
	}
	if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
		return errors.Wrapf(err, "engine: create %s", dir)
	}
	return nil
}
