package vector

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/viant/vecstore/encoder"
	"github.com/viant/vecstore/internal/logging"
)

const (
	upsertDocument = `INSERT INTO documents(text, vector) VALUES(?, ?)
ON CONFLICT(text) DO UPDATE SET vector = excluded.vector`
	selectDocuments = `SELECT text, vector FROM documents ORDER BY id`
	countDocuments  = `SELECT COUNT(*) FROM documents`
	deleteDocument  = `DELETE FROM documents WHERE text = ?`
)

// Option customizes a SQLiteStore.
type Option func(*options)

type options struct {
	mode        OpenMode
	codec       Codec
	embed       encoder.Func
	customEmbed bool
	dimension   int
}

func newOptions(opts []Option) *options {
	o := &options{mode: ResetOnOpen, codec: JSONCodec{}, embed: encoder.Embed}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.dimension == 0 && !o.customEmbed {
		o.dimension = encoder.Dimension
	}
	if o.dimension < 0 {
		o.dimension = 0
	}
	return o
}

// WithOpenMode selects how the documents table is prepared. The default is
// ResetOnOpen.
func WithOpenMode(mode OpenMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithCodec selects the BLOB codec. The default is JSONCodec.
func WithCodec(codec Codec) Option {
	return func(o *options) {
		if codec != nil {
			o.codec = codec
		}
	}
}

// WithEmbedFunc replaces the letter-frequency encoder used on write. Vector
// lengths are then only checked when WithDimension is also given.
func WithEmbedFunc(embed encoder.Func) Option {
	return func(o *options) {
		if embed != nil {
			o.embed = embed
			o.customEmbed = true
		}
	}
}

// WithDimension sets the vector length every stored and loaded vector must
// have. It defaults to encoder.Dimension with the default encoder; a
// negative value disables the check.
func WithDimension(dimension int) Option {
	return func(o *options) { o.dimension = dimension }
}

// SQLiteStore is a Store backed by a single documents table. Each text maps
// to one row; writes use SQLite's native upsert so an insert and a replace
// are a single atomic statement.
type SQLiteStore struct {
	db        *sql.DB
	codec     Codec
	embed     encoder.Func
	dimension int
	logger    *slog.Logger
}

// NewSQLiteStore creates a new SQLite-backed Store over db and prepares the
// documents table according to the open mode. With the default
// ResetOnOpen, any documents already in db are discarded.
func NewSQLiteStore(ctx context.Context, db *sql.DB, opts ...Option) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("vector: db is nil")
	}
	o := newOptions(opts)
	logger := logging.Logger("vector")
	if err := ApplySchema(ctx, db, o.mode); err != nil {
		return nil, storageError("schema", err)
	}
	logger.Debug("documents table ready", "mode", o.mode.String(), "codec", o.codec.Name())
	return &SQLiteStore{db: db, codec: o.codec, embed: o.embed, dimension: o.dimension, logger: logger}, nil
}

// Codec returns the codec used for stored vectors.
func (s *SQLiteStore) Codec() Codec { return s.codec }

// Upsert embeds text, encodes the vector, and writes it keyed by text. An
// existing row with the same text has its vector replaced.
func (s *SQLiteStore) Upsert(ctx context.Context, text string) error {
	blob, err := s.encode(ctx, text)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, upsertDocument, text, blob); err != nil {
		return storageError("upsert", err)
	}
	s.logger.Debug("document upserted", "text", text)
	return nil
}

// UpsertAll upserts every text in one transaction. Either all rows are
// written or none.
func (s *SQLiteStore) UpsertAll(ctx context.Context, texts []string) error {
	if len(texts) == 0 {
		return nil
	}
	blobs := make([][]byte, len(texts))
	for i, text := range texts {
		blob, err := s.encode(ctx, text)
		if err != nil {
			return err
		}
		blobs[i] = blob
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertDocument)
	if err != nil {
		return storageError("prepare", err)
	}
	defer stmt.Close()

	for i, text := range texts {
		if _, err := stmt.ExecContext(ctx, text, blobs[i]); err != nil {
			return storageError("upsert", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storageError("commit", err)
	}
	s.logger.Debug("documents upserted", "count", len(texts))
	return nil
}

// AllDocuments loads every document and decodes its vector. A single
// undecodable row, or one whose vector has the wrong length, fails the whole
// call with a CodecError.
func (s *SQLiteStore) AllDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, selectDocuments)
	if err != nil {
		return nil, storageError("select", err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var text string
		var blob []byte
		if err := rows.Scan(&text, &blob); err != nil {
			return nil, storageError("scan", err)
		}
		vec, err := s.codec.Decode(blob)
		if err == nil {
			err = s.checkDimension("decode", vec)
		}
		if err != nil {
			s.logger.Error("corrupted document vector", "text", text, "codec", s.codec.Name(), "error", err)
			if !IsCodecError(err) {
				err = codecError("decode", err)
			}
			return nil, errors.WithMessagef(err, "document %q", text)
		}
		out = append(out, Document{Text: text, Vector: vec})
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("select", err)
	}
	return out, nil
}

// Count returns the number of stored documents.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, countDocuments).Scan(&n); err != nil {
		return 0, storageError("count", err)
	}
	return n, nil
}

// Remove deletes the document with the given text. Removing a missing text
// is not an error.
func (s *SQLiteStore) Remove(ctx context.Context, text string) error {
	if text == "" {
		return errors.WithStack(ErrEmptyText)
	}
	if _, err := s.db.ExecContext(ctx, deleteDocument, text); err != nil {
		return storageError("delete", err)
	}
	return nil
}

func (s *SQLiteStore) encode(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, errors.WithStack(ErrEmptyText)
	}
	vec, err := s.embed(ctx, text)
	if err != nil {
		return nil, errors.WithMessage(err, "vector: embed")
	}
	if err := s.checkDimension("encode", vec); err != nil {
		return nil, err
	}
	blob, err := s.codec.Encode(vec)
	if err != nil {
		if !IsCodecError(err) {
			err = codecError("encode", err)
		}
		return nil, err
	}
	return blob, nil
}

func (s *SQLiteStore) checkDimension(op string, vec []float64) error {
	if s.dimension == 0 || len(vec) == s.dimension {
		return nil
	}
	return codecError(op, errors.Errorf("vector: expected %d dimensions, got %d", s.dimension, len(vec)))
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
