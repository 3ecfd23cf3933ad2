// Package varint encodes fixed-width integers as variable-length byte
// sequences: the base-128 continuation format used inside protobuf and
// similar wire formats, with zig-zag mapping for signed widths.
//
// Layers:
//   - Unsigned: AppendUvarint / ReadUvarint and per-width AppendUint32,
//     ReadUint32, ... (8, 16, 32, 64, 128 bits and the platform uint).
//   - Signed: AppendVarint / ReadVarint and per-width AppendInt32,
//     ReadInt32, ... using the zig-zag transform.
//   - Codec[T] / Numeric[T]: one capability value per width (U32, I64, ...)
//     so generic code is written once.
//   - Sequences: AppendMany / ReadMany and the delta-encoded
//     AppendManyDelta / ReadManyDelta, produced lazily as iter.Seq2.
//
// Wire format:
//
//	300   (uint32) -> AC 02
//	1000  (int32)  -> D0 0F
//	-1    (int32)  -> 01
//	-64   (int32)  -> 7F
//
// Readers return the decoded value plus the unread suffix of the input,
// which aliases the caller's slice:
//
//	v, rest, err := varint.ReadInt32(buf)
//	for err == nil && len(rest) > 0 { ... }
//
// Decoding an encoding that does not fit the requested width fails with
// ErrTooManyBytesForType rather than truncating.
package varint
