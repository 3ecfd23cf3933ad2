package codec

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/unkn0wn-root/varint"
)

type recHooks struct {
	mu       sync.Mutex
	rejected []error
	limits   []string
	trailing []int
}

var _ varint.Hooks = (*recHooks)(nil)

func (h *recHooks) DecodeRejected(_ string, _ int, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rejected = append(h.rejected, err)
}

func (h *recHooks) LimitExceeded(name, what string, _, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.limits = append(h.limits, name+":"+what)
}

func (h *recHooks) TrailingBytes(_ string, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.trailing = append(h.trailing, n)
}

type recLogger struct {
	msgs []string
}

func (l *recLogger) Debug(msg string, f varint.Fields) { l.add("debug", msg, f) }
func (l *recLogger) Info(msg string, f varint.Fields)  { l.add("info", msg, f) }
func (l *recLogger) Warn(msg string, f varint.Fields)  { l.add("warn", msg, f) }
func (l *recLogger) Error(msg string, f varint.Fields) { l.add("error", msg, f) }

func (l *recLogger) add(level, msg string, f varint.Fields) {
	name, _ := f["codec"].(string)
	l.msgs = append(l.msgs, level+" "+msg+" "+name)
}

func TestScalarRoundTrip(t *testing.T) {
	c := NewScalar[int32](varint.I32, Options{})
	for _, v := range []int32{0, 1, -1, 1000, -64, -2147483648} {
		b, err := c.Encode(v)
		if err != nil {
			t.Fatalf("Encode(%d): %v", v, err)
		}
		got, err := c.Decode(b)
		if err != nil {
			t.Fatalf("Decode(%x): %v", b, err)
		}
		if got != v {
			t.Fatalf("got %d want %d", got, v)
		}
	}
}

func TestScalarRejectsTrailingBytes(t *testing.T) {
	h := &recHooks{}
	log := &recLogger{}
	c := NewScalar[uint32](varint.U32, Options{Name: "offset", Hooks: h, Logger: log})

	enc, _ := c.Encode(300)
	enc = append(enc, 0xDE, 0xAD)
	_, err := c.Decode(enc)
	var tb *TrailingBytesError
	if !errors.As(err, &tb) || tb.N != 2 {
		t.Fatalf("expected TrailingBytesError{N:2}, got %v", err)
	}
	if len(h.trailing) != 1 || h.trailing[0] != 2 {
		t.Fatalf("trailing hook not called: %+v", h.trailing)
	}
	if len(h.rejected) != 1 {
		t.Fatalf("expected one rejection, got %d", len(h.rejected))
	}
	if len(log.msgs) != 1 || !strings.HasSuffix(log.msgs[0], " offset") {
		t.Fatalf("unexpected log lines: %q", log.msgs)
	}
}

func TestScalarDecodeErrors(t *testing.T) {
	h := &recHooks{}
	c := NewScalar[uint8](varint.U8, Options{Hooks: h})

	cases := []struct {
		in   []byte
		want error
	}{
		{nil, varint.ErrEmptyBuffer},
		{[]byte{0x80}, varint.ErrNotEnoughBytes},
		{[]byte{0x80, 0xAD, 0xE2, 0x04}, varint.ErrTooManyBytesForType},
	}
	for _, tc := range cases {
		if _, err := c.Decode(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("Decode(%x): got %v want %v", tc.in, err, tc.want)
		}
	}
	if len(h.rejected) != len(cases) {
		t.Fatalf("expected %d rejections, got %d", len(cases), len(h.rejected))
	}
}

func TestPackedRoundTrip(t *testing.T) {
	c := NewPacked[uint64](varint.U64, Options{})
	in := []uint64{0, 1, 127, 128, 1 << 40, 18446744073709551615}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("len mismatch: got %d want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("item %d: got %d want %d", i, got[i], in[i])
		}
	}

	empty, err := c.Decode(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty payload: got %v, %v", empty, err)
	}
}

func TestPackedTruncatedTail(t *testing.T) {
	h := &recHooks{}
	c := NewPacked[int32](varint.I32, Options{Hooks: h})
	b, _ := c.Encode([]int32{12, -1, -12000})
	if _, err := c.Decode(b[:len(b)-1]); !errors.Is(err, varint.ErrNotEnoughBytes) {
		t.Fatalf("expected ErrNotEnoughBytes, got %v", err)
	}
	var se *varint.SequenceError
	if !errors.As(h.rejected[0], &se) || se.Index != 2 {
		t.Fatalf("expected SequenceError at index 2, got %v", h.rejected[0])
	}
}

func TestPackedMaxItems(t *testing.T) {
	h := &recHooks{}
	log := &recLogger{}
	c := NewPacked[uint16](varint.U16, Options{Name: "ids", MaxItems: 3, Hooks: h, Logger: log})

	if _, err := c.Encode([]uint16{1, 2, 3, 4}); !errors.Is(err, ErrTooManyItems) {
		t.Fatalf("Encode over limit: got %v", err)
	}
	ok, err := c.Encode([]uint16{1, 2, 3})
	if err != nil {
		t.Fatalf("Encode at limit: %v", err)
	}
	if _, err := c.Decode(ok); err != nil {
		t.Fatalf("Decode at limit: %v", err)
	}

	over := varint.EncodeMany[uint16](varint.U16, []uint16{1, 2, 3, 4, 5})
	if _, err := c.Decode(over); !errors.Is(err, ErrTooManyItems) {
		t.Fatalf("Decode over limit: got %v", err)
	}
	if len(h.limits) != 2 || h.limits[0] != "ids:items" {
		t.Fatalf("limit hooks: %q", h.limits)
	}
	for _, m := range log.msgs {
		if !strings.HasPrefix(m, "warn varint: limit exceeded") {
			t.Fatalf("unexpected log line %q", m)
		}
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	c := NewDelta[int64](varint.I64, Options{})
	in := []int64{1_000_000, 1_000_001, 1_000_005, 999_000, -5, 0}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("item %d: got %d want %d", i, got[i], in[i])
		}
	}

	plain, _ := NewPacked[int64](varint.I64, Options{}).Encode([]int64{1_000_000, 1_000_001, 1_000_002})
	delta, _ := c.Encode([]int64{1_000_000, 1_000_001, 1_000_002})
	if len(delta) >= len(plain) {
		t.Fatalf("delta %d bytes not smaller than plain %d", len(delta), len(plain))
	}
}

func TestLimitCodec(t *testing.T) {
	h := &recHooks{}
	inner := NewPacked[uint32](varint.U32, Options{})
	c := LimitCodec[[]uint32]{Inner: inner, MaxDecode: 4, Name: "block", Hooks: h}

	b, err := c.Encode([]uint32{300, 300, 300})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := c.Decode(b); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if len(h.limits) != 1 || h.limits[0] != "block:bytes" {
		t.Fatalf("limit hooks: %q", h.limits)
	}

	small, _ := c.Encode([]uint32{1, 2})
	got, err := c.Decode(small)
	if err != nil || len(got) != 2 {
		t.Fatalf("small payload: %v, %v", got, err)
	}

	unlimited := LimitCodec[[]uint32]{Inner: inner}
	if _, err := unlimited.Decode(b); err != nil {
		t.Fatalf("MaxDecode=0 must disable limit: %v", err)
	}
}

func TestEncodeIsStable(t *testing.T) {
	c := NewScalar[varint.Int128](varint.I128, Options{})
	a, _ := c.Encode(varint.Int128From64(-12000))
	b, _ := c.Encode(varint.Int128From64(-12000))
	if !bytes.Equal(a, b) || !bytes.Equal(a, []byte{0xBF, 0xBB, 0x01}) {
		t.Fatalf("unstable or wrong encoding: %x %x", a, b)
	}
}

func TestCoalesce(t *testing.T) {
	if got := coalesce("", "packed"); got != "packed" {
		t.Fatalf("got %q", got)
	}
	if got := coalesce("ids", "packed"); got != "ids" {
		t.Fatalf("got %q", got)
	}
	s := Options{}.resolve("x")
	if _, ok := s.log.(varint.NopLogger); !ok {
		t.Fatalf("default logger should be NopLogger, got %T", s.log)
	}
	if _, ok := s.hooks.(varint.NopHooks); !ok {
		t.Fatalf("default hooks should be NopHooks, got %T", s.hooks)
	}
}
