package memory

import (
	"context"
	"iter"
	"sort"

	"github.com/parkerdavis/gmaps/internal/usage/store"
)

var _ store.Store[string] = (*Store[string])(nil)

// Store is an in-memory ledger store, used for temporary sessions where
// spend records should not outlive the process. Entries are kept sorted by
// key so listing matches the chronological order the pebble store provides.
type Store[V any] struct {
	entries []store.Entry[V]
}

// NewStore creates a new in-memory ledger store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{}
}

// search returns the insertion index for key and whether it is present.
func (s *Store[V]) search(key string) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Key >= key
	})
	return i, i < len(s.entries) && s.entries[i].Key == key
}

// Get retrieves a ledger entry by its key.
func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	if i, ok := s.search(key); ok {
		return s.entries[i].Value, true, nil
	}
	var zero V
	return zero, false, nil
}

// Set records a ledger entry under the given key, keeping key order.
func (s *Store[V]) Set(ctx context.Context, key string, value V) error {
	i, ok := s.search(key)
	if ok {
		s.entries[i].Value = value
		return nil
	}

	s.entries = append(s.entries, store.Entry[V]{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = store.Entry[V]{Key: key, Value: value}
	return nil
}

// List retrieves ledger entries in key order, with optional pagination.
func (s *Store[V]) List(ctx context.Context, pageSize *int, pageToken *string) (iter.Seq2[string, V], *string, error) {
	entries := s.entries
	if pageToken != nil {
		i, _ := s.search(*pageToken)
		entries = entries[i:]
	}

	var nextPageToken *string
	if pageSize != nil && len(entries) > *pageSize {
		nextPageToken = &entries[*pageSize].Key
		entries = entries[:*pageSize]
	}

	return func(yield func(string, V) bool) {
		for _, entry := range entries {
			if !yield(entry.Key, entry.Value) {
				break
			}
		}
	}, nextPageToken, nil
}

// Close is a no-op for the in-memory store.
func (s *Store[V]) Close(context.Context) error {
	return nil
}
