// Package storetest provides a conformance suite run against every ledger
// store implementation.
package storetest

import (
	"fmt"
	"testing"

	"github.com/parkerdavis/gmaps/internal/usage"
	"github.com/parkerdavis/gmaps/internal/usage/store"
	"github.com/shoenig/test/must"
)

// Suite tests a ledger store implementation using the provided instance.
// Keys are written out of order to check that listing comes back sorted,
// and pagination tokens must resume exactly where the previous page ended.
func Suite(t *testing.T, s store.Store[string]) {
	t.Helper()

	err := s.Set(t.Context(), "b", "second")
	must.NoError(t, err)

	err = s.Set(t.Context(), "a", "first")
	must.NoError(t, err)

	err = s.Set(t.Context(), "c", "third")
	must.NoError(t, err)

	value, ok, err := s.Get(t.Context(), "a")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, "first", value)

	_, ok, err = s.Get(t.Context(), "missing")
	must.NoError(t, err)
	must.False(t, ok)

	// First page: two entries, in key order.
	entries, next, err := s.List(t.Context(), store.PageSize(2), nil)
	must.NoError(t, err)
	must.NotNil(t, next)

	var keys []string
	for key := range entries {
		keys = append(keys, key)
	}
	must.Eq(t, []string{"a", "b"}, keys)

	// Second page: the remainder.
	entries, next, err = s.List(t.Context(), store.PageSize(2), next)
	must.NoError(t, err)
	must.Nil(t, next)

	keys = keys[:0]
	for key, value := range entries {
		keys = append(keys, key)
		must.Eq(t, "third", value)
	}
	must.Eq(t, []string{"c"}, keys)

	must.NoError(t, s.Close(t.Context()))
}

// LargeListSuite checks that a nil page size returns the whole ledger in a
// single page, using enough entries to defeat any backend-internal paging.
func LargeListSuite(t *testing.T, s store.Store[string]) {
	t.Helper()

	const n = 40

	for i := 0; i < n; i++ {
		err := s.Set(t.Context(), fmt.Sprintf("entry-%03d", i), fmt.Sprintf("value-%d", i))
		must.NoError(t, err)
	}

	entries, next, err := s.List(t.Context(), nil, nil)
	must.NoError(t, err)
	must.Nil(t, next)

	var count int
	var last string
	for key := range entries {
		must.True(t, last < key)
		last = key
		count++
	}
	must.Eq(t, n, count)

	must.NoError(t, s.Close(t.Context()))
}

// CallSuite tests a ledger store holding usage.Call values, the value type
// the application actually persists.
func CallSuite(t *testing.T, s store.Store[usage.Call]) {
	t.Helper()

	first := usage.Call{API: usage.APIStaticMaps, Success: true, StatusCode: 200, Cost: 0.002}
	second := usage.Call{API: usage.APIGeocoding, Success: false, StatusCode: 403}

	err := s.Set(t.Context(), "k1", first)
	must.NoError(t, err)

	err = s.Set(t.Context(), "k2", second)
	must.NoError(t, err)

	value, ok, err := s.Get(t.Context(), "k1")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, first, value)

	entries, next, err := s.List(t.Context(), nil, nil)
	must.NoError(t, err)
	must.Nil(t, next)

	var calls []usage.Call
	for _, call := range entries {
		calls = append(calls, call)
	}
	must.Eq(t, []usage.Call{first, second}, calls)

	must.NoError(t, s.Close(t.Context()))
}
