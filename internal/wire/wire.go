package wire

import (
	"errors"
	"math/bits"

	"lukechampine.com/uint128"
)

const (
	groupBits = 7
	groupMask = 0x7F
	contBit   = 0x80

	// Longest encodings of 64- and 128-bit magnitudes.
	MaxLen64  = 10
	MaxLen128 = 19
)

var (
	ErrEmptyBuffer         = errors.New("varint: empty buffer")
	ErrNotEnoughBytes      = errors.New("varint: not enough bytes")
	ErrTooManyBytesForType = errors.New("varint: too many bytes for type")
)

// Group layout: 7 payload bits per byte, least-significant group first.
// Every byte but the last has 0x80 set. Zero is a single 0x00.
func AppendGroups(dst []byte, x uint64) []byte {
	for x >= contBit {
		dst = append(dst, byte(x)|contBit)
		x >>= groupBits
	}
	return append(dst, byte(x))
}

// AppendGroups128 is AppendGroups for a 128-bit magnitude.
func AppendGroups128(dst []byte, x uint128.Uint128) []byte {
	for x.Hi != 0 || x.Lo >= contBit {
		dst = append(dst, byte(x.Lo)|contBit)
		x = x.Rsh(groupBits)
	}
	return append(dst, byte(x.Lo))
}

// ConsumeGroups reads one encoded magnitude that must fit in width bits
// (1..64). rest aliases the unread suffix of b.
func ConsumeGroups(b []byte, width uint) (x uint64, rest []byte, err error) {
	if len(b) == 0 {
		return 0, nil, ErrEmptyBuffer
	}
	var shift uint
	for {
		if len(b) == 0 {
			return 0, nil, ErrNotEnoughBytes
		}
		c := b[0]
		b = b[1:]

		g := uint64(c & groupMask)
		if !fits(g, shift, width) {
			return 0, nil, ErrTooManyBytesForType
		}
		x |= g << shift
		shift += groupBits

		if c&contBit == 0 {
			return x, b, nil
		}
	}
}

// ConsumeGroups128 is ConsumeGroups with a fixed width of 128 bits.
func ConsumeGroups128(b []byte) (x uint128.Uint128, rest []byte, err error) {
	if len(b) == 0 {
		return uint128.Zero, nil, ErrEmptyBuffer
	}
	var shift uint
	for {
		if len(b) == 0 {
			return uint128.Zero, nil, ErrNotEnoughBytes
		}
		c := b[0]
		b = b[1:]

		g := uint64(c & groupMask)
		if !fits(g, shift, 128) {
			return uint128.Zero, nil, ErrTooManyBytesForType
		}
		x = x.Or(uint128.From64(g).Lsh(shift))
		shift += groupBits

		if c&contBit == 0 {
			return x, b, nil
		}
	}
}

// fits is the checked shift: the group must start inside the width and
// none of its set bits may land past it.
func fits(g uint64, shift, width uint) bool {
	if shift >= width {
		return false
	}
	room := width - shift
	return room >= groupBits || g>>room == 0
}

// Size returns the encoded length of x.
func Size(x uint64) int {
	return (bits.Len64(x|1) + groupBits - 1) / groupBits
}

// Size128 returns the encoded length of x.
func Size128(x uint128.Uint128) int {
	if x.Hi == 0 {
		return Size(x.Lo)
	}
	return (64 + bits.Len64(x.Hi) + groupBits - 1) / groupBits
}
