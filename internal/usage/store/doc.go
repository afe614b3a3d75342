// Package store provides a pluggable persistence layer for the API usage
// ledger. It provides a pebble backend by default, but can be extended to
// support other storage backends as needed.
package store
