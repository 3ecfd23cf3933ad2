// Package codec adapts the varint encoders to whole-payload codecs: one
// []byte holds exactly one value (Scalar) or one complete list (Packed,
// Delta). Use it where a caller hands over an already isolated byte range,
// e.g. a column block or a cache entry.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
