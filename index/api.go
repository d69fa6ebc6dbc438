package index

// Index defines a generic vector index with basic lifecycle methods.
// It enables building from (id, embedding) pairs and kNN queries.
type Index interface {
	// Build constructs the index from the given ids and vectors.
	// ids and vectors must have the same length; vectors must share one
	// dimension.
	Build(ids []string, vectors [][]float64) error

	// Query runs a kNN search against the index with the provided query vector
	// and returns up to k matches as parallel slices of ids and scores, where
	// higher score means more similar (e.g., cosine similarity).
	Query(query []float64, k int) (ids []string, scores []float64, err error)

	// Len returns the number of indexed vectors.
	Len() int
}
