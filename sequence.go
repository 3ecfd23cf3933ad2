package varint

import "iter"

// AppendMany appends the encoding of each value, in order, to dst.
func AppendMany[T any](c Codec[T], dst []byte, values []T) []byte {
	for _, v := range values {
		dst = c.EncodeInto(dst, v)
	}
	return dst
}

// EncodeMany is AppendMany into a new buffer sized for one byte per value.
func EncodeMany[T any](c Codec[T], values []T) []byte {
	return AppendMany(c, make([]byte, 0, len(values)), values)
}

// ReadMany decodes consecutive values from src.
//
// The sequence ends cleanly when src is exhausted at a value boundary. If a
// value fails to decode, a *SequenceError is yielded with the zero T and the
// sequence ends. Every range over the result starts again at src[0]; src is
// never modified.
func ReadMany[T any](c Codec[T], src []byte) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		b := src
		for i := 0; len(b) > 0; i++ {
			v, rest, err := c.Decode(b)
			if err != nil {
				var zero T
				yield(zero, &SequenceError{Index: i, Offset: len(src) - len(b), Err: err})
				return
			}
			b = rest
			if !yield(v, nil) {
				return
			}
		}
	}
}

// AppendManyDelta appends values as successive differences: the first value
// is written relative to c.Zero(), every later one relative to its
// predecessor. Differences wrap, so any sequence round-trips, including
// decreasing runs of unsigned values.
func AppendManyDelta[T any](c Numeric[T], dst []byte, values []T) []byte {
	prev := c.Zero()
	for _, v := range values {
		dst = c.EncodeInto(dst, c.Sub(v, prev))
		prev = v
	}
	return dst
}

// EncodeManyDelta is AppendManyDelta into a new buffer.
func EncodeManyDelta[T any](c Numeric[T], values []T) []byte {
	return AppendManyDelta(c, make([]byte, 0, len(values)), values)
}

// ReadManyDelta reverses AppendManyDelta, yielding the reconstructed absolute
// values. End-of-input and error rules are those of ReadMany.
func ReadManyDelta[T any](c Numeric[T], src []byte) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		acc := c.Zero()
		for d, err := range ReadMany[T](c, src) {
			if err != nil {
				yield(d, err)
				return
			}
			acc = c.Add(acc, d)
			if !yield(acc, nil) {
				return
			}
		}
	}
}

// CollectMany decodes all of src into a slice. It returns the first error.
func CollectMany[T any](c Codec[T], src []byte) ([]T, error) {
	return collect(ReadMany(c, src))
}

// CollectManyDelta is CollectMany for delta-encoded input.
func CollectManyDelta[T any](c Numeric[T], src []byte) ([]T, error) {
	return collect(ReadManyDelta(c, src))
}

func collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
