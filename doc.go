// Package vecstore is a minimal persistent vector store. Documents are
// embedded with a 26-dimensional letter-frequency encoder, stored in a
// SQLite file keyed by their exact text, and ranked against a query with an
// exhaustive cosine-similarity scan.
//
//	store, err := vecstore.Open(ctx, "vector_store.db")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//	_ = store.Upsert(ctx, "I like apples")
//	matches, err := store.TopN(ctx, "apples", 1)
//
// By default every Open resets the documents table (vector.ResetOnOpen);
// pass vector.WithOpenMode(vector.KeepOnOpen) to keep earlier documents.
package vecstore
