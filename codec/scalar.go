package codec

import "github.com/unkn0wn-root/varint"

// Scalar is a Codec for a single varint value. Decode rejects payloads with
// bytes after the value. The zero value is NOT ready to use; construct with
// NewScalar.
type Scalar[T any] struct {
	c varint.Codec[T]
	s settings
}

var _ Codec[int64] = Scalar[int64]{}

func NewScalar[T any](c varint.Codec[T], opts Options) Scalar[T] {
	return Scalar[T]{c: c, s: opts.resolve("scalar")}
}

func (sc Scalar[T]) Encode(v T) ([]byte, error) {
	return sc.c.Encode(v), nil
}

func (sc Scalar[T]) Decode(b []byte) (T, error) {
	var zero T
	v, rest, err := sc.c.Decode(b)
	if err != nil {
		sc.s.rejected(len(b), err)
		return zero, err
	}
	if len(rest) > 0 {
		sc.s.hooks.TrailingBytes(sc.s.name, len(rest))
		err := &TrailingBytesError{N: len(rest)}
		sc.s.rejected(len(b), err)
		return zero, err
	}
	return v, nil
}
