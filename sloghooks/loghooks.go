package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/varint"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RejectEvery   uint64
	TrailingEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr   atomic.Uint64
	trailingCtr atomic.Uint64
}

var _ varint.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeRejected(name string, size int, err error) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Debug("varint.decode_rejected",
		"codec", name,
		"size", size,
		"err", err)
}

// Limits are never sampled.
func (h *Hooks) LimitExceeded(name, what string, got, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("varint.limit_exceeded",
		"codec", name,
		"what", what,
		"got", got,
		"limit", limit)
}

func (h *Hooks) TrailingBytes(name string, n int) {
	if h.l == nil || !sample(h.opts.TrailingEvery, &h.trailingCtr) {
		return
	}
	h.l.Info("varint.trailing_bytes",
		"codec", name,
		"n", n)
}
