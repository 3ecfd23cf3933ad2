package varint

import (
	"unsafe"

	"github.com/unkn0wn-root/varint/internal/wire"
	"golang.org/x/exp/constraints"
)

// bitsOf is the declared width of T; uint and uintptr follow the platform.
func bitsOf[T constraints.Integer]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

// AppendUvarint appends the base-128 encoding of v to dst and returns the
// extended slice. Zero encodes as a single 0x00; no leading zero groups are
// ever emitted.
func AppendUvarint[T constraints.Unsigned](dst []byte, v T) []byte {
	return wire.AppendGroups(dst, uint64(v))
}

// ReadUvarint decodes one value of type T from the front of src and returns
// it together with the unread remainder of src.
//
// It fails with ErrEmptyBuffer if src is empty, ErrNotEnoughBytes if src ends
// mid-value and ErrTooManyBytesForType if the value needs more bits than T has.
func ReadUvarint[T constraints.Unsigned](src []byte) (T, []byte, error) {
	x, rest, err := wire.ConsumeGroups(src, bitsOf[T]())
	if err != nil {
		return 0, nil, err
	}
	return T(x), rest, nil
}

// SizeUvarint returns len(AppendUvarint(nil, v)) without encoding.
func SizeUvarint[T constraints.Unsigned](v T) int {
	return wire.Size(uint64(v))
}

func AppendUint8(dst []byte, v uint8) []byte   { return AppendUvarint(dst, v) }
func AppendUint16(dst []byte, v uint16) []byte { return AppendUvarint(dst, v) }
func AppendUint32(dst []byte, v uint32) []byte { return AppendUvarint(dst, v) }
func AppendUint64(dst []byte, v uint64) []byte { return AppendUvarint(dst, v) }
func AppendUint(dst []byte, v uint) []byte     { return AppendUvarint(dst, v) }

func ReadUint8(src []byte) (uint8, []byte, error)   { return ReadUvarint[uint8](src) }
func ReadUint16(src []byte) (uint16, []byte, error) { return ReadUvarint[uint16](src) }
func ReadUint32(src []byte) (uint32, []byte, error) { return ReadUvarint[uint32](src) }
func ReadUint64(src []byte) (uint64, []byte, error) { return ReadUvarint[uint64](src) }
func ReadUint(src []byte) (uint, []byte, error)     { return ReadUvarint[uint](src) }
