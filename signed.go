package varint

import (
	"github.com/unkn0wn-root/varint/internal/wire"
	"golang.org/x/exp/constraints"
)

// zigzag maps v to (v << 1) ^ (v >> (bits-1)): 0, -1, 1, -2 ... become
// 0, 1, 2, 3 ... The shift runs in 64 bits, so for every width below 64 the
// minimum value cannot overflow. For 64-bit widths the bit shifted out of the
// unsigned word is the sign bit, which the mask restores.
func zigzag[T constraints.Signed](v T) uint64 {
	x := int64(v)
	return uint64(x)<<1 ^ uint64(x>>63)
}

func unzigzag[T constraints.Signed](u uint64) T {
	return T(int64(u>>1) ^ -int64(u&1))
}

// AppendVarint appends the zig-zag base-128 encoding of v to dst.
func AppendVarint[T constraints.Signed](dst []byte, v T) []byte {
	if v == 0 {
		return append(dst, 0)
	}
	return wire.AppendGroups(dst, zigzag(v))
}

// ReadVarint decodes one zig-zag encoded value of type T from the front of
// src. Errors are those of ReadUvarint; the width check applies to the
// zig-zag magnitude, which always fits in the unsigned counterpart of T.
func ReadVarint[T constraints.Signed](src []byte) (T, []byte, error) {
	u, rest, err := wire.ConsumeGroups(src, bitsOf[T]())
	if err != nil {
		return 0, nil, err
	}
	return unzigzag[T](u), rest, nil
}

// SizeVarint returns len(AppendVarint(nil, v)) without encoding.
func SizeVarint[T constraints.Signed](v T) int {
	return wire.Size(zigzag(v))
}

func AppendInt8(dst []byte, v int8) []byte   { return AppendVarint(dst, v) }
func AppendInt16(dst []byte, v int16) []byte { return AppendVarint(dst, v) }
func AppendInt32(dst []byte, v int32) []byte { return AppendVarint(dst, v) }
func AppendInt64(dst []byte, v int64) []byte { return AppendVarint(dst, v) }
func AppendInt(dst []byte, v int) []byte     { return AppendVarint(dst, v) }

func ReadInt8(src []byte) (int8, []byte, error)   { return ReadVarint[int8](src) }
func ReadInt16(src []byte) (int16, []byte, error) { return ReadVarint[int16](src) }
func ReadInt32(src []byte) (int32, []byte, error) { return ReadVarint[int32](src) }
func ReadInt64(src []byte) (int64, []byte, error) { return ReadVarint[int64](src) }
func ReadInt(src []byte) (int, []byte, error)     { return ReadVarint[int](src) }
