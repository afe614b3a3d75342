package store

import "encoding/json"

// Codec encodes and decodes ledger values for a storage backend. Keys are
// plain strings and stored as raw bytes so their sort order survives
// encoding; only values go through a codec.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Ensure JSONCodec implements the Codec interface.
var _ Codec[any] = (*JSONCodec[any])(nil)

// JSONCodec encodes and decodes ledger values using standard Go JSON
// serialization.
type JSONCodec[V any] struct{}

// Encode encodes a value into a JSON byte slice for a storage backend.
func (c *JSONCodec[V]) Encode(value V) ([]byte, error) {
	return json.Marshal(value)
}

// Decode decodes a JSON byte slice into a value from a storage backend.
func (c *JSONCodec[V]) Decode(data []byte) (V, error) {
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return value, err
	}
	return value, nil
}
