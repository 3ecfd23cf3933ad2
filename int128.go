package varint

import (
	"github.com/unkn0wn-root/varint/internal/wire"
	"lukechampine.com/uint128"
)

// Int128 is a two's-complement signed 128-bit integer. Hi carries the sign.
// Arithmetic wraps on overflow like the built-in signed types.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	MinInt128 = Int128{Hi: -1 << 63}
	MaxInt128 = Int128{Hi: 1<<63 - 1, Lo: 1<<64 - 1}
)

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

func int128FromBits(u uint128.Uint128) Int128 {
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

func (x Int128) bits() uint128.Uint128 {
	return uint128.Uint128{Lo: x.Lo, Hi: uint64(x.Hi)}
}

func (x Int128) IsZero() bool { return x.Hi == 0 && x.Lo == 0 }

func (x Int128) Sign() int {
	switch {
	case x.Hi < 0:
		return -1
	case x.IsZero():
		return 0
	default:
		return 1
	}
}

func (x Int128) Add(y Int128) Int128 { return int128FromBits(x.bits().AddWrap(y.bits())) }
func (x Int128) Sub(y Int128) Int128 { return int128FromBits(x.bits().SubWrap(y.bits())) }
func (x Int128) Neg() Int128         { return int128FromBits(uint128.Zero.SubWrap(x.bits())) }

func (x Int128) Cmp(y Int128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	}
	return 0
}

// String formats x in base 10.
func (x Int128) String() string {
	if x.Hi < 0 {
		// Neg(MinInt128) wraps to itself; its bit pattern read unsigned is 2^127.
		return "-" + x.Neg().bits().String()
	}
	return x.bits().String()
}

func zigzag128(x Int128) uint128.Uint128 {
	mask := uint128.Zero
	if x.Hi < 0 {
		mask = uint128.Max
	}
	return x.bits().Lsh(1).Xor(mask)
}

func unzigzag128(u uint128.Uint128) Int128 {
	v := u.Rsh(1)
	if u.Lo&1 == 1 {
		v = v.Xor(uint128.Max)
	}
	return int128FromBits(v)
}

// AppendUint128 appends the base-128 encoding of v to dst.
func AppendUint128(dst []byte, v uint128.Uint128) []byte {
	return wire.AppendGroups128(dst, v)
}

// ReadUint128 decodes one 128-bit unsigned value from the front of src.
func ReadUint128(src []byte) (uint128.Uint128, []byte, error) {
	x, rest, err := wire.ConsumeGroups128(src)
	if err != nil {
		return uint128.Zero, nil, err
	}
	return x, rest, nil
}

// AppendInt128 appends the zig-zag base-128 encoding of v to dst.
func AppendInt128(dst []byte, v Int128) []byte {
	if v.IsZero() {
		return append(dst, 0)
	}
	return wire.AppendGroups128(dst, zigzag128(v))
}

// ReadInt128 decodes one zig-zag encoded 128-bit value from the front of src.
func ReadInt128(src []byte) (Int128, []byte, error) {
	u, rest, err := wire.ConsumeGroups128(src)
	if err != nil {
		return Int128{}, nil, err
	}
	return unzigzag128(u), rest, nil
}

func SizeUint128(v uint128.Uint128) int { return wire.Size128(v) }
func SizeInt128(v Int128) int           { return wire.Size128(zigzag128(v)) }
