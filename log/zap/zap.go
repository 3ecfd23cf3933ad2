// Package zap adapts a *zap.Logger to varint.Logger.
package zap

import (
	"github.com/unkn0wn-root/varint"
	"go.uber.org/zap"
)

var _ varint.Logger = Logger{}

type Logger struct{ L *zap.Logger }

func New(l *zap.Logger) Logger { return Logger{L: l.WithOptions(zap.AddCallerSkip(1))} }

func (z Logger) Debug(msg string, f varint.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f varint.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f varint.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f varint.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f varint.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
