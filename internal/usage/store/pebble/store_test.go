package pebble_test

import (
	"testing"

	cockroachPebble "github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/parkerdavis/gmaps/internal/usage/store"
	"github.com/parkerdavis/gmaps/internal/usage/store/pebble"
	"github.com/parkerdavis/gmaps/internal/usage/store/storetest"
	"github.com/shoenig/test/must"
)

func TestStore_disk(t *testing.T) {
	s, err := pebble.NewStore(t.TempDir(), nil, &store.JSONCodec[string]{})
	must.NoError(t, err)

	storetest.Suite(t, s)
}

func TestStore_memory(t *testing.T) {
	opts := &cockroachPebble.Options{FS: vfs.NewMem()}

	s, err := pebble.NewStore("ledger", opts, &store.JSONCodec[string]{})
	must.NoError(t, err)

	storetest.Suite(t, s)
}

func TestStore_largeList(t *testing.T) {
	s, err := pebble.NewStore(t.TempDir(), nil, &store.JSONCodec[string]{})
	must.NoError(t, err)

	storetest.LargeListSuite(t, s)
}

func TestStore_calls(t *testing.T) {
	s, err := pebble.NewStore(t.TempDir(), nil, &store.JSONCodec[usage.Call]{})
	must.NoError(t, err)

	storetest.CallSuite(t, s)
}
