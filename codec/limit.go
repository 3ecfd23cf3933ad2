package codec

import "github.com/unkn0wn-root/varint"

// LimitCodec wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: bound the work done on lists coming from an untrusted source
// before any varint is scanned.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode. Longer payloads fail with ErrPayloadTooLarge
	// without invoking Inner.
	MaxDecode int

	Name   string
	Hooks  varint.Hooks
	Logger varint.Logger
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		s := Options{Name: c.Name, Hooks: c.Hooks, Logger: c.Logger}.resolve("limit")
		return zero, s.exceeded("bytes", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
