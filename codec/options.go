package codec

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/varint"
)

var (
	ErrPayloadTooLarge = errors.New("varint/codec: payload too large")
	ErrTooManyItems    = errors.New("varint/codec: too many items")
)

// TrailingBytesError reports bytes left over after a single-value payload.
type TrailingBytesError struct {
	N int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("varint/codec: %d trailing bytes after value", e.N)
}

// Options tune a codec. All fields are optional.
type Options struct {
	Name     string        // label in logs and hooks; defaults to the codec kind
	Logger   varint.Logger // if nil, NopLogger is used
	Hooks    varint.Hooks  // if nil, NopHooks is used
	MaxItems int           // list codecs only; <= 0 disables
}

type settings struct {
	name     string
	log      varint.Logger
	hooks    varint.Hooks
	maxItems int
}

func (o Options) resolve(kind string) settings {
	return settings{
		name:     coalesce(o.Name, kind),
		log:      coalesce[varint.Logger](o.Logger, varint.NopLogger{}),
		hooks:    coalesce[varint.Hooks](o.Hooks, varint.NopHooks{}),
		maxItems: o.MaxItems,
	}
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func (s settings) rejected(size int, err error) {
	s.hooks.DecodeRejected(s.name, size, err)
	s.log.Debug("varint: decode rejected", varint.Fields{
		"codec": s.name,
		"size":  size,
		"err":   err,
	})
}

func (s settings) exceeded(what string, got, limit int) error {
	s.hooks.LimitExceeded(s.name, what, got, limit)
	s.log.Warn("varint: limit exceeded", varint.Fields{
		"codec": s.name,
		"what":  what,
		"got":   got,
		"limit": limit,
	})
	if what == "bytes" {
		return fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, got, limit)
	}
	return fmt.Errorf("%w: %d > %d", ErrTooManyItems, got, limit)
}

func (s settings) checkItems(n int) error {
	if s.maxItems > 0 && n > s.maxItems {
		return s.exceeded("items", n, s.maxItems)
	}
	return nil
}
