package ranker

import (
	"context"

	"github.com/pkg/errors"
	"github.com/viant/vecstore/encoder"
	"github.com/viant/vecstore/index"
	"github.com/viant/vecstore/index/bruteforce"
	"github.com/viant/vecstore/vector"
)

// ErrNegativeN is returned by TopN when n is negative.
var ErrNegativeN = errors.New("ranker: n must not be negative")

// Source supplies the candidate documents of a query.
type Source interface {
	AllDocuments(ctx context.Context) ([]vector.Document, error)
}

// Match represents a single similarity search hit.
type Match struct {
	Text  string
	Score float64
}

// Ranker scores every document of a Source against a query.
type Ranker struct {
	Source   Source
	Embed    encoder.Func
	NewIndex func() index.Index
}

// New constructs a Ranker over source. A nil embed selects the
// letter-frequency encoder.
func New(source Source, embed encoder.Func) (*Ranker, error) {
	if source == nil {
		return nil, errors.New("ranker: source is nil")
	}
	if embed == nil {
		embed = encoder.Embed
	}
	return &Ranker{
		Source:   source,
		Embed:    embed,
		NewIndex: func() index.Index { return &bruteforce.Index{} },
	}, nil
}

// TopN returns the min(n, document count) documents most similar to query,
// ordered by descending cosine similarity. Documents with equal scores keep
// the order in which the source returned them. Zero-magnitude vectors score 0.
func (r *Ranker) TopN(ctx context.Context, query string, n int) ([]Match, error) {
	if n < 0 {
		return nil, errors.WithStack(ErrNegativeN)
	}
	if n == 0 {
		return []Match{}, nil
	}

	// 1. Embed the query text.
	qVec, err := r.Embed(ctx, query)
	if err != nil {
		return nil, errors.WithMessage(err, "ranker: embed query")
	}

	// 2. Load every candidate.
	docs, err := r.Source.AllDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return []Match{}, nil
	}

	// 3. Score them all and keep the best n.
	ids := make([]string, len(docs))
	vecs := make([][]float64, len(docs))
	for i, d := range docs {
		ids[i] = d.Text
		vecs[i] = d.Vector
	}
	idx := r.NewIndex()
	if err := idx.Build(ids, vecs); err != nil {
		return nil, errors.WithMessage(err, "ranker: build index")
	}
	texts, scores, err := idx.Query(qVec, n)
	if err != nil {
		return nil, errors.WithMessage(err, "ranker: query index")
	}
	out := make([]Match, len(texts))
	for i := range texts {
		out[i] = Match{Text: texts[i], Score: scores[i]}
	}
	return out, nil
}
