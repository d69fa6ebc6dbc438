package encoder

import (
	"context"
	"strings"
)

// Dimension is the length of every vector produced by Encode.
const Dimension = 26

// Func converts free-form text into an embedding.
//
// Stores and rankers accept a Func so the letter-frequency encoder can be
// swapped for another deterministic embedding without touching storage.
type Func func(ctx context.Context, text string) ([]float64, error)

// Encode returns the raw letter-frequency vector of text. The text is
// lower-cased first; digits, punctuation, whitespace and non-Latin letters
// contribute nothing. Encode("") is the zero vector.
func Encode(text string) []float64 {
	vec := make([]float64, Dimension)
	for _, r := range strings.ToLower(text) {
		if r < 'a' || r > 'z' {
			continue
		}
		vec[r-'a']++
	}
	return vec
}

// Embed adapts Encode to Func.
func Embed(_ context.Context, text string) ([]float64, error) {
	return Encode(text), nil
}

var _ Func = Embed
