package pebble

import (
	"context"
	"fmt"
	"iter"

	"github.com/cockroachdb/pebble"
	"github.com/parkerdavis/gmaps/internal/usage/store"
)

// Ensure that Store implements the store.Store interface.
var _ store.Store[any] = (*Store[any])(nil)

// Store is a ledger store that uses Pebble as the underlying storage engine.
//
// Pebble can use an in-memory filesystem or a directory on disk for storage,
// depending on the options provided. By default, this application uses a
// directory on disk. Keys are written as raw bytes, so ksuid keys come back
// out in chronological order.
type Store[V any] struct {
	db    *pebble.DB
	codec store.Codec[V]
}

// NewStore creates a new Pebble ledger store.
func NewStore[V any](dirname string, opts *pebble.Options, codec store.Codec[V]) (*Store[V], error) {
	db, err := pebble.Open(dirname, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble database: %w", err)
	}

	return &Store[V]{db: db, codec: codec}, nil
}

// Get retrieves a ledger entry by its key.
func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V

	valueBytes, closer, err := s.db.Get([]byte(key))
	if err != nil {
		return zero, false, nil
	}
	defer closer.Close()

	value, err := s.codec.Decode(valueBytes)
	if err != nil {
		return zero, false, fmt.Errorf("failed to decode value: %w", err)
	}

	return value, true, nil
}

// Set records a ledger entry under the given key, synced to disk so a spend
// record survives an unclean exit.
func (s *Store[V]) Set(ctx context.Context, key string, value V) error {
	valueBytes, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	if err := s.db.Set([]byte(key), valueBytes, pebble.Sync); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// List retrieves ledger entries in key (chronological) order. A nil page
// size returns everything from the token onward in one page.
func (s *Store[V]) List(ctx context.Context, pageSize *int, pageToken *string) (iter.Seq2[string, V], *string, error) {
	iterOpts := &pebble.IterOptions{}

	if pageToken != nil {
		iterOpts.LowerBound = []byte(*pageToken)
	}

	it, err := s.db.NewIter(iterOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pebble ledger iterator: %w", err)
	}
	defer it.Close()

	var (
		entries       []store.Entry[V]
		nextPageToken *string
	)

	for it.First(); it.Valid(); it.Next() {
		if ctx.Err() != nil {
			return nil, nil, fmt.Errorf("stopped iteration via context: %w", ctx.Err())
		}

		v, err := s.codec.Decode(it.Value())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode value: %w", err)
		}

		entries = append(entries, store.Entry[V]{Key: string(it.Key()), Value: v})

		if pageSize != nil && len(entries) >= *pageSize {
			if it.Next() {
				nextKey := string(it.Key())
				nextPageToken = &nextKey
			}
			break
		}
	}
	if it.Error() != nil {
		return nil, nil, fmt.Errorf("failed to list entries: %w", it.Error())
	}

	return func(yield func(string, V) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				break
			}
		}
	}, nextPageToken, nil
}

// Close closes the ledger store.
func (s *Store[V]) Close(ctx context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close pebble database: %w", err)
	}
	return nil
}
