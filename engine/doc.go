// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening a single-owner connection over a database
// file and applying DSN pragmas. It intentionally keeps a thin surface so
// other packages can share the same driver instance.
package engine
