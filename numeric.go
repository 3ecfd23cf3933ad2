package varint

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Codec is the per-width capability used by generic callers such as the
// sequence helpers. Implementations forward to the width's Append/Read pair.
type Codec[T any] interface {
	// Zero returns the additive identity of T.
	Zero() T
	// Encode returns the encoding of v in a new slice.
	Encode(v T) []byte
	// EncodeInto appends the encoding of v to dst.
	EncodeInto(dst []byte, v T) []byte
	// Decode reads one value from the front of src and returns the rest.
	Decode(src []byte) (T, []byte, error)
}

// Numeric is a Codec whose values can be differenced, as required by the
// delta sequence helpers. Add and Sub wrap on overflow.
type Numeric[T any] interface {
	Codec[T]
	Add(a, b T) T
	Sub(a, b T) T
}

// Unsigned is the Codec for a built-in unsigned width.
type Unsigned[T constraints.Unsigned] struct{}

func (Unsigned[T]) Zero() T                              { return 0 }
func (Unsigned[T]) Encode(v T) []byte                    { return AppendUvarint(make([]byte, 0, SizeUvarint(v)), v) }
func (Unsigned[T]) EncodeInto(dst []byte, v T) []byte    { return AppendUvarint(dst, v) }
func (Unsigned[T]) Decode(src []byte) (T, []byte, error) { return ReadUvarint[T](src) }
func (Unsigned[T]) Add(a, b T) T                         { return a + b }
func (Unsigned[T]) Sub(a, b T) T                         { return a - b }

// Signed is the Codec for a built-in signed width.
type Signed[T constraints.Signed] struct{}

func (Signed[T]) Zero() T                              { return 0 }
func (Signed[T]) Encode(v T) []byte                    { return AppendVarint(make([]byte, 0, SizeVarint(v)), v) }
func (Signed[T]) EncodeInto(dst []byte, v T) []byte    { return AppendVarint(dst, v) }
func (Signed[T]) Decode(src []byte) (T, []byte, error) { return ReadVarint[T](src) }
func (Signed[T]) Add(a, b T) T                         { return a + b }
func (Signed[T]) Sub(a, b T) T                         { return a - b }

type Uint128Codec struct{}

func (Uint128Codec) Zero() uint128.Uint128 { return uint128.Zero }
func (Uint128Codec) Encode(v uint128.Uint128) []byte {
	return AppendUint128(make([]byte, 0, SizeUint128(v)), v)
}
func (Uint128Codec) EncodeInto(dst []byte, v uint128.Uint128) []byte { return AppendUint128(dst, v) }
func (Uint128Codec) Decode(src []byte) (uint128.Uint128, []byte, error) {
	return ReadUint128(src)
}
func (Uint128Codec) Add(a, b uint128.Uint128) uint128.Uint128 { return a.AddWrap(b) }
func (Uint128Codec) Sub(a, b uint128.Uint128) uint128.Uint128 { return a.SubWrap(b) }

type Int128Codec struct{}

func (Int128Codec) Zero() Int128                              { return Int128{} }
func (Int128Codec) Encode(v Int128) []byte                    { return AppendInt128(make([]byte, 0, SizeInt128(v)), v) }
func (Int128Codec) EncodeInto(dst []byte, v Int128) []byte    { return AppendInt128(dst, v) }
func (Int128Codec) Decode(src []byte) (Int128, []byte, error) { return ReadInt128(src) }
func (Int128Codec) Add(a, b Int128) Int128                    { return a.Add(b) }
func (Int128Codec) Sub(a, b Int128) Int128                    { return a.Sub(b) }

var (
	U8   = Unsigned[uint8]{}
	U16  = Unsigned[uint16]{}
	U32  = Unsigned[uint32]{}
	U64  = Unsigned[uint64]{}
	Uint = Unsigned[uint]{}
	U128 = Uint128Codec{}

	I8   = Signed[int8]{}
	I16  = Signed[int16]{}
	I32  = Signed[int32]{}
	I64  = Signed[int64]{}
	Int  = Signed[int]{}
	I128 = Int128Codec{}
)

var (
	_ Numeric[uint32]          = U32
	_ Numeric[int64]           = I64
	_ Numeric[uint128.Uint128] = U128
	_ Numeric[Int128]          = I128
)
