package varint

import (
	"fmt"

	"github.com/unkn0wn-root/varint/internal/wire"
)

var (
	// ErrEmptyBuffer: nothing left to read at the start of a value.
	ErrEmptyBuffer = wire.ErrEmptyBuffer

	// ErrNotEnoughBytes: input ended while a continuation bit was set.
	ErrNotEnoughBytes = wire.ErrNotEnoughBytes

	// ErrTooManyBytesForType: the encoded magnitude does not fit the target width.
	ErrTooManyBytesForType = wire.ErrTooManyBytesForType
)

// SequenceError is the error produced by ReadMany and ReadManyDelta when an
// element fails to decode.
type SequenceError struct {
	Index  int // position of the failing element
	Offset int // byte offset of its first byte
	Err    error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("varint: element %d at offset %d: %v", e.Index, e.Offset, e.Err)
}

func (e *SequenceError) Unwrap() error { return e.Err }
