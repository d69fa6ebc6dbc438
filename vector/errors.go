package vector

import (
	"github.com/pkg/errors"
)

// ErrEmptyText is returned when a document with empty text is written.
var ErrEmptyText = errors.New("vector: document text is empty")

// StorageError reports a failure of the backing database: it is unreachable,
// unwritable, or the schema could not be created.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "vector: storage " + e.Op + ": " + e.Err.Error() }

// Unwrap returns the underlying driver error.
func (e *StorageError) Unwrap() error { return e.Err }

// Cause returns the underlying driver error.
func (e *StorageError) Cause() error { return e.Err }

// CodecError reports a vector that could not be encoded, or a stored blob
// that could not be decoded.
type CodecError struct {
	Op  string
	Err error
}

func (e *CodecError) Error() string { return "vector: codec " + e.Op + ": " + e.Err.Error() }

// Unwrap returns the underlying codec error.
func (e *CodecError) Unwrap() error { return e.Err }

// Cause returns the underlying codec error.
func (e *CodecError) Cause() error { return e.Err }

func storageError(op string, err error) error {
	return errors.WithStack(&StorageError{Op: op, Err: err})
}

func codecError(op string, err error) error {
	return errors.WithStack(&CodecError{Op: op, Err: err})
}

// IsStorageError reports whether err wraps a StorageError.
func IsStorageError(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

// IsCodecError reports whether err wraps a CodecError.
func IsCodecError(err error) bool {
	var target *CodecError
	return errors.As(err, &target)
}
