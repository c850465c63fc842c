// Package codec (de)serializes cache values. The remote client stores
// raw bytes; a Codec turns the caller's value type into those bytes and
// back. JSON is the default; Msgpack, CBOR, and Protobuf are available
// for callers that care about size or schema.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
