package vector

import (
	"context"
)

// Document represents a logical document stored in the vector store. A
// document is identified by its exact text; at most one vector exists per
// text at any time.
type Document struct {
	// Text is the document content and its unique key.
	Text string

	// Vector is the embedding computed from Text when it was last upserted.
	Vector []float64
}

// Store defines the application-level document store API.
type Store interface {
	// Upsert embeds text and writes it, replacing the vector of an existing
	// document with the same text.
	Upsert(ctx context.Context, text string) error

	// UpsertAll upserts every text in one transaction.
	UpsertAll(ctx context.Context, texts []string) error

	// AllDocuments returns every stored document with its decoded vector.
	// Callers must not rely on the order.
	AllDocuments(ctx context.Context) ([]Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Remove deletes the document with the given text, if present.
	Remove(ctx context.Context, text string) error
}
