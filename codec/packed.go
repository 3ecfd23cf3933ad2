package codec

import (
	"iter"

	"github.com/unkn0wn-root/varint"
)

// Packed is a Codec for []T stored as consecutive varints.
// An empty payload decodes to a nil slice.
type Packed[T any] struct {
	c varint.Codec[T]
	s settings
}

var _ Codec[[]uint32] = Packed[uint32]{}

func NewPacked[T any](c varint.Codec[T], opts Options) Packed[T] {
	return Packed[T]{c: c, s: opts.resolve("packed")}
}

func (p Packed[T]) Encode(vs []T) ([]byte, error) {
	if err := p.s.checkItems(len(vs)); err != nil {
		return nil, err
	}
	return varint.EncodeMany(p.c, vs), nil
}

func (p Packed[T]) Decode(b []byte) ([]T, error) {
	return decodeAll(p.s, varint.ReadMany(p.c, b), len(b))
}

// Delta is a Codec for []T stored as successive differences. Suited to
// sorted identifiers and offsets.
type Delta[T any] struct {
	c varint.Numeric[T]
	s settings
}

var _ Codec[[]int64] = Delta[int64]{}

func NewDelta[T any](c varint.Numeric[T], opts Options) Delta[T] {
	return Delta[T]{c: c, s: opts.resolve("delta")}
}

func (d Delta[T]) Encode(vs []T) ([]byte, error) {
	if err := d.s.checkItems(len(vs)); err != nil {
		return nil, err
	}
	return varint.EncodeManyDelta(d.c, vs), nil
}

func (d Delta[T]) Decode(b []byte) ([]T, error) {
	return decodeAll(d.s, varint.ReadManyDelta(d.c, b), len(b))
}

func decodeAll[T any](s settings, seq iter.Seq2[T, error], size int) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			s.rejected(size, err)
			return nil, err
		}
		if s.maxItems > 0 && len(out) == s.maxItems {
			// stop at the first item past the limit; the rest is not scanned
			return nil, s.exceeded("items", len(out)+1, s.maxItems)
		}
		out = append(out, v)
	}
	return out, nil
}
