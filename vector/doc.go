// Package vector defines the document model and the SQLite-backed document
// store used by this project. It includes:
//   - Document model and Store interface
//   - SQLiteStore: durable upsert-by-text storage of encoded vectors
//   - Schema helpers that reset or ensure the documents table
//   - Vector codecs (JSON and binary BLOB) and distance functions
package vector
