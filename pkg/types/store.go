package types

import (
	"context"
	"io"
)

// RowQuery is a filter over the joined row projection. Selection is a SQL
// boolean expression over the Row column names with "?" placeholders bound
// to Args. An empty Selection matches all rows. OrderBy, when set, names
// the sort column; otherwise rows come back in physical insertion order,
// which the aggregator's first-seen grouping relies on.
type RowQuery struct {
	Selection string
	Args      []any
	OrderBy   string
}

// Store is the narrow interface to the backing row store. Implementations
// must be safe for concurrent readers; ApplyBatch must be atomic
// (all-or-nothing) and must resolve back-references to identifiers
// generated by earlier inserts in the same batch.
type Store interface {
	// Query returns the rows matching q.
	Query(ctx context.Context, q RowQuery) ([]Row, error)

	// ApplyBatch applies ops as one atomic unit. On failure no operation
	// has taken effect.
	ApplyBatch(ctx context.Context, ops []Operation) error

	// OpenPhoto opens the stored photo blob for the contact. Returns
	// ErrNotFound when the contact has no photo.
	OpenPhoto(ctx context.Context, identifier string) (io.ReadCloser, error)
}
