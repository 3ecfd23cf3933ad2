// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    RejectEvery: 10, // sample logs: ~every 10th rejected payload
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	ids := codec.NewDelta(varint.U64, codec.Options{
//	    Name:     "post_ids",
//	    Hooks:    hooks, // or `raw` if you don't want async
//	    MaxItems: 1 << 16,
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/varint"
)

type Hooks struct {
	inner varint.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ varint.Hooks = (*Hooks)(nil)

func New(inner varint.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Hooks must not be
// called after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) TrailingBytes(name string, n int) { h.try(func() { h.inner.TrailingBytes(name, n) }) }
func (h *Hooks) DecodeRejected(name string, size int, err error) {
	h.try(func() { h.inner.DecodeRejected(name, size, err) })
}
func (h *Hooks) LimitExceeded(name, what string, got, limit int) {
	h.try(func() { h.inner.LimitExceeded(name, what, got, limit) })
}
