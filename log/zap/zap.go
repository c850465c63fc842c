// Package zap adapts a zap.Logger to the sessioncache Logger.
package zap

import (
	"go.uber.org/zap"

	"github.com/mythfish/sessioncache"
)

type Logger struct{ L *zap.Logger }

var _ sessioncache.Logger = Logger{}

func (z Logger) Debug(msg string, f sessioncache.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f sessioncache.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f sessioncache.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f sessioncache.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f sessioncache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
