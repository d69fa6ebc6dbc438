package vector

import (
	"errors"
	"math"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func nan() float64 { return math.NaN() }

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := storageError("upsert", cause)
	assert.True(t, IsStorageError(err))
	assert.False(t, IsCodecError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, pkgerrors.Cause(err))
	assert.Equal(t, "vector: storage upsert: disk I/O error", err.Error())

	err = pkgerrors.WithMessage(codecError("decode", cause), "document \"x\"")
	assert.True(t, IsCodecError(err))
	assert.False(t, IsStorageError(err))
	assert.Equal(t, cause, pkgerrors.Cause(err))
}
