// Package zap adapts a *zap.Logger to the jsonmap.Logger interface.
package zap

import (
	"github.com/unkn0wn-root/jsonmap"
	"go.uber.org/zap"
)

type Logger struct{ L *zap.Logger }

var _ jsonmap.Logger = Logger{}

func New(l *zap.Logger) Logger { return Logger{L: l} }

func (z Logger) Debug(msg string, f jsonmap.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f jsonmap.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f jsonmap.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f jsonmap.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f jsonmap.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
