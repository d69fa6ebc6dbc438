package bruteforce

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/viant/vecstore/index"
	"github.com/viant/vecstore/vector"
)

// Index is a simple brute-force vector index implementing cosine similarity.
type Index struct {
	ids    []string
	vecs   [][]float64
	dim    int
	normSq []float64
}

// Build loads ids and vectors and precomputes squared magnitudes.
func (i *Index) Build(ids []string, vectors [][]float64) error {
	if len(ids) != len(vectors) {
		return errors.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.ids, i.vecs, i.normSq, i.dim = nil, nil, nil, 0
		return nil
	}
	dim := len(vectors[0])
	for j := range vectors {
		if len(vectors[j]) != dim {
			return errors.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
	}
	normSq := make([]float64, len(vectors))
	for j := range vectors {
		normSq[j] = vector.Dot(vectors[j], vectors[j])
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float64(nil), vectors...)
	i.dim = dim
	i.normSq = normSq
	return nil
}

// Len returns the number of indexed vectors.
func (i *Index) Len() int { return len(i.ids) }

// Query returns the top-k ids by cosine similarity, best first. Equal scores
// keep build order. Vectors with zero magnitude, on either side, score 0.
// When k <= 0 every vector is returned.
func (i *Index) Query(query []float64, k int) ([]string, []float64, error) {
	if len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, errors.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	qn := vector.Dot(query, query)
	type scored struct {
		idx   int
		score float64
	}
	scoreds := make([]scored, len(i.vecs))
	for j := range i.vecs {
		scoreds[j] = scored{idx: j, score: vector.Cosine(vector.Dot(query, i.vecs[j]), qn, i.normSq[j])}
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].score > scoreds[b].score })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outScores := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outScores[n] = scoreds[n].score
	}
	return outIDs, outScores, nil
}

var _ index.Index = (*Index)(nil)
