package vector

import (
	"math"

	"github.com/pkg/errors"
)

// CosineSimilarity computes dot(a,b) / sqrt(|a|^2 * |b|^2). It returns an
// error if the vectors have different lengths or are empty.
//
// When either vector has zero magnitude the ratio is 0/0; the similarity is
// then defined as 0.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.Errorf("vector: cosine similarity dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, errors.New("vector: cosine similarity on empty vectors")
	}
	return Cosine(Dot(a, b), Dot(a, a), Dot(b, b)), nil
}

// Cosine resolves a cosine similarity from a dot product and the two squared
// norms. A zero norm yields 0.
//
// The squared norms are multiplied before the square root is taken, so a
// vector compared with itself scores exactly 1 when its components are
// integral.
func Cosine(dot, normSqA, normSqB float64) float64 {
	if normSqA == 0 || normSqB == 0 {
		return 0
	}
	return dot / math.Sqrt(normSqA*normSqB)
}

// Dot returns the dot product of two equally sized vectors.
func Dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
