package bruteforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Query(t *testing.T) {
	idx := &Index{}
	require.NoError(t, idx.Build(
		[]string{"x", "y", "xy", "zero"},
		[][]float64{{1, 0}, {0, 1}, {1, 1}, {0, 0}},
	))
	assert.Equal(t, 4, idx.Len())

	ids, scores, err := idx.Query([]float64{1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "xy"}, ids)
	assert.Equal(t, 1.0, scores[0])
	assert.InDelta(t, 0.7071067811865475, scores[1], 1e-15)

	ids, scores, err = idx.Query([]float64{1, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "xy", "y", "zero"}, ids)
	assert.Equal(t, []float64{0, 0}, scores[2:])
}

func TestIndex_QueryStableTies(t *testing.T) {
	idx := &Index{}
	require.NoError(t, idx.Build(
		[]string{"c", "a", "b"},
		[][]float64{{2, 0}, {1, 0}, {3, 0}},
	))
	ids, scores, err := idx.Query([]float64{5, 0}, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Equal(t, []float64{1, 1, 1}, scores)
}

func TestIndex_ZeroQuery(t *testing.T) {
	idx := &Index{}
	require.NoError(t, idx.Build([]string{"a", "b"}, [][]float64{{1, 0}, {0, 1}}))
	ids, scores, err := idx.Query([]float64{0, 0}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
	assert.Equal(t, []float64{0, 0}, scores)
}

func TestIndex_Errors(t *testing.T) {
	idx := &Index{}
	assert.Error(t, idx.Build([]string{"a"}, nil))
	assert.Error(t, idx.Build([]string{"a", "b"}, [][]float64{{1}, {1, 2}}))

	require.NoError(t, idx.Build([]string{"a"}, [][]float64{{1, 2}}))
	_, _, err := idx.Query([]float64{1}, 1)
	assert.Error(t, err)
}

func TestIndex_Empty(t *testing.T) {
	idx := &Index{}
	require.NoError(t, idx.Build(nil, nil))
	ids, scores, err := idx.Query([]float64{1, 2}, 3)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Empty(t, scores)
}
