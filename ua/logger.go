package ua

import (
	"sync"

	"go.uber.org/zap"

	opcuaruntime "github.com/wippyai/opcua-runtime"
	"github.com/wippyai/opcua-runtime/sys"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the package logger. Loggers installed into
// configurations before the call keep forwarding to the previous instance.
func SetLogger(l *zap.Logger) {
	logger = l
}

// newSysLogger builds a native logger block forwarding engine log records
// to the package logger. Ownership of the returned instance passes to the
// configuration it is installed into; the configuration's clean routine
// disarms it.
func newSysLogger() *sys.Logger {
	zl := Logger()
	return &sys.Logger{
		Log: func(level opcuaruntime.LogLevel, category, msg string) {
			field := zap.String("category", category)
			switch level {
			case opcuaruntime.LogTrace, opcuaruntime.LogDebug:
				zl.Debug(msg, field)
			case opcuaruntime.LogInfo:
				zl.Info(msg, field)
			case opcuaruntime.LogWarning:
				zl.Warn(msg, field)
			default:
				zl.Error(msg, field, zap.Stringer("level", level))
			}
		},
	}
}
