package sys

import (
	opcuaruntime "github.com/wippyai/opcua-runtime"
)

// Log categories used by engine components.
const (
	CategoryNetwork       = "network"
	CategoryEventLoop     = "eventloop"
	CategorySecureChannel = "securechannel"
	CategorySession       = "session"
	CategoryServer        = "server"
	CategoryUserland      = "userland"
)

// Logger is the engine's pluggable logging block. Configuration structures
// hold a pointer to one instance; default population copies that pointer
// into derived sub-structures, so the same instance may be referenced from
// several places while being owned by exactly one of them. Clear must run
// exactly once per instance, by whoever owns it.
type Logger struct {
	// Context is opaque caller state passed through unchanged.
	Context any

	// Log emits one record. Must be non-nil on an installed logger.
	Log func(level opcuaruntime.LogLevel, category string, msg string)

	// Clear releases resources held by the logger. May be nil.
	Clear func(l *Logger)
}

// LoggerClear invokes the logger's clean routine and disarms the instance
// so a stray reference cannot emit through a freed logger.
func LoggerClear(l *Logger) {
	if l == nil {
		return
	}
	if l.Clear != nil {
		l.Clear(l)
	}
	l.Log = nil
	l.Clear = nil
	l.Context = nil
}
