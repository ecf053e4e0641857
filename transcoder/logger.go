package transcoder

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the transcoder package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the transcoder package's logger. Passing nil restores
// the no-op logger. Safe to call while codecs are in use.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
