package vector

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	// CodecJSON names the JSON array codec.
	CodecJSON = "json"
	// CodecBinary names the length-prefixed float64 codec.
	CodecBinary = "binary"
)

// Codec converts a vector to and from the BLOB stored in the documents
// table. Decode(Encode(v)) must reproduce v bit for bit.
type Codec interface {
	Name() string
	Encode(vec []float64) ([]byte, error)
	Decode(b []byte) ([]float64, error)
}

// CodecByName resolves a codec by name; an empty name selects JSON.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", CodecJSON:
		return JSONCodec{}, nil
	case CodecBinary:
		return BinaryCodec{}, nil
	}
	return nil, errors.Errorf("vector: unknown codec %q", name)
}

// JSONCodec stores vectors as a JSON array of numbers, e.g. [1,0,2.5].
// Numbers are written in their shortest round-trip form, so float64 values
// survive exactly.
type JSONCodec struct{}

// Name returns CodecJSON.
func (JSONCodec) Name() string { return CodecJSON }

// Encode marshals vec as a JSON array. NaN and infinities have no JSON
// representation and are rejected.
func (JSONCodec) Encode(vec []float64) ([]byte, error) {
	if err := checkFinite(vec); err != nil {
		return nil, codecError("encode", err)
	}
	if vec == nil {
		vec = []float64{}
	}
	b, err := json.Marshal(vec)
	if err != nil {
		return nil, codecError("encode", err)
	}
	return b, nil
}

// Decode parses a JSON array of numbers. Anything else, including null,
// is reported as a CodecError.
func (JSONCodec) Decode(b []byte) ([]float64, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, codecError("decode", errors.Errorf("invalid JSON vector blob %q", abbreviate(b)))
	}
	var values []*float64
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return nil, codecError("decode", err)
	}
	vec := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			return nil, codecError("decode", errors.Errorf("null value at %d", i))
		}
		vec[i] = *v
	}
	return vec, nil
}

// BinaryCodec stores vectors as a little-endian uint32 element count
// followed by IEEE 754 float64 values.
type BinaryCodec struct{}

// Name returns CodecBinary.
func (BinaryCodec) Name() string { return CodecBinary }

// Encode writes the count prefix and the raw float64 bits of vec.
func (BinaryCodec) Encode(vec []float64) ([]byte, error) {
	b := make([]byte, 4+len(vec)*8)
	binary.LittleEndian.PutUint32(b, uint32(len(vec)))
	for i, v := range vec {
		binary.LittleEndian.PutUint64(b[4+i*8:], math.Float64bits(v))
	}
	return b, nil
}

// Decode reads a blob produced by Encode.
func (BinaryCodec) Decode(b []byte) ([]float64, error) {
	if len(b) < 4 {
		return nil, codecError("decode", errors.Errorf("invalid binary vector blob length %d", len(b)))
	}
	n := int(binary.LittleEndian.Uint32(b))
	if len(b)-4 != n*8 {
		return nil, codecError("decode", errors.Errorf("binary vector blob holds %d bytes, want %d for %d values", len(b)-4, n*8, n))
	}
	vec := make([]float64, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[4+i*8:]))
	}
	return vec, nil
}

func checkFinite(vec []float64) error {
	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("non-finite value %v at %d", v, i)
		}
	}
	return nil
}

func abbreviate(b []byte) string {
	const limit = 32
	if len(b) <= limit {
		return string(b)
	}
	return string(b[:limit]) + "..."
}
