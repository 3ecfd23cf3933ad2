// Package logrus adapts a *logrus.Entry to varint.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/varint"
)

var _ varint.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New wraps l with no preset fields.
func New(l *logrus.Logger) Logger { return Logger{E: logrus.NewEntry(l)} }

func (l Logger) Debug(msg string, f varint.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f varint.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f varint.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f varint.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
