package vecstore

import (
	"context"
	"database/sql"
	"sync"

	"github.com/pkg/errors"
	"github.com/viant/vecstore/config"
	"github.com/viant/vecstore/engine"
	"github.com/viant/vecstore/ranker"
	"github.com/viant/vecstore/vector"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("vecstore: store is closed")

// Match is a ranked query result.
type Match = ranker.Match

// Store owns the database handle of one vector store file. Operations are
// serialized; Close waits for a running operation to finish.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	docs   vector.Store
	ranker *ranker.Ranker
	closed bool
}

// Open opens or creates the store at path. Unless opts select
// vector.KeepOnOpen, documents from earlier runs are discarded.
func Open(ctx context.Context, path string, opts ...vector.Option) (*Store, error) {
	return open(ctx, path, engine.Pragmas{}, opts...)
}

// OpenConfig opens the store described by cfg.
func OpenConfig(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Store.Validate(); err != nil {
		return nil, errors.WithMessage(err, "vecstore: config")
	}
	mode, err := vector.ParseOpenMode(cfg.Store.Mode)
	if err != nil {
		return nil, err
	}
	codec, err := vector.CodecByName(cfg.Store.Codec)
	if err != nil {
		return nil, err
	}
	pragmas := engine.Pragmas{WAL: cfg.Store.WAL, BusyTimeoutMS: cfg.Store.BusyTimeoutMS}
	return open(ctx, cfg.Store.Path, pragmas, vector.WithOpenMode(mode), vector.WithCodec(codec))
}

func open(ctx context.Context, path string, pragmas engine.Pragmas, opts ...vector.Option) (*Store, error) {
	db, err := engine.OpenFile(ctx, path, pragmas)
	if err != nil {
		return nil, errors.WithStack(&vector.StorageError{Op: "open", Err: err})
	}
	docs, err := vector.NewSQLiteStore(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	rk, err := ranker.New(docs, nil)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, docs: docs, ranker: rk}, nil
}

// Upsert embeds text and writes it, replacing any document with the same
// text.
func (s *Store) Upsert(ctx context.Context, text string) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	return s.docs.Upsert(ctx, text)
}

// UpsertAll upserts texts atomically.
func (s *Store) UpsertAll(ctx context.Context, texts ...string) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	return s.docs.UpsertAll(ctx, texts)
}

// TopN returns the min(n, document count) documents most similar to query,
// best first.
func (s *Store) TopN(ctx context.Context, query string, n int) ([]Match, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	return s.ranker.TopN(ctx, query, n)
}

// Documents returns every stored document.
func (s *Store) Documents(ctx context.Context) ([]vector.Document, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	return s.docs.AllDocuments(ctx)
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.acquire(); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()
	return s.docs.Count(ctx)
}

// Remove deletes the document with the given text.
func (s *Store) Remove(ctx context.Context, text string) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	return s.docs.Remove(ctx, text)
}

// Close releases the database handle. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.db.Close(); err != nil {
		return errors.WithStack(&vector.StorageError{Op: "close", Err: err})
	}
	return nil
}

// acquire locks the store for one operation. On success the caller must
// unlock s.mu.
func (s *Store) acquire() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.WithStack(ErrClosed)
	}
	return nil
}
