package store

import (
	"context"
	"iter"
)

// Entry pairs a ledger key with its recorded value.
type Entry[V any] struct {
	Key   string
	Value V
}

// Store persists ledger entries keyed by sortable string identifiers
// (ksuids), so lexicographic key order is chronological order. Entries are
// written once and read back in order; there is no delete because a spend
// ledger is append-only.
//
// List returns entries in key order. A nil pageSize returns all remaining
// entries in one page with a nil nextPageToken; a non-nil pageSize caps the
// page and the returned token, when non-nil, is the key the next page starts
// at (inclusive).
type Store[V any] interface {
	Get(ctx context.Context, key string) (value V, found bool, err error)
	Set(ctx context.Context, key string, value V) error
	List(ctx context.Context, pageSize *int, pageToken *string) (entries iter.Seq2[string, V], nextPageToken *string, err error)
	Close(ctx context.Context) error
}

func ptr[T any](v T) *T {
	return &v
}

// PageSize returns a page size argument for List.
func PageSize(pageSize int) *int {
	return ptr(pageSize)
}

// PageToken returns a page token argument for List.
func PageToken(pageToken string) *string {
	return ptr(pageToken)
}
