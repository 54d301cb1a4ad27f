package opcuaruntime

// LogLevel mirrors the engine's log severity levels.
type LogLevel uint8

const (
	LogTrace LogLevel = iota
	LogDebug
	LogInfo
	LogWarning
	LogError
	LogFatal
)

var logLevelNames = [...]string{
	LogTrace:   "trace",
	LogDebug:   "debug",
	LogInfo:    "info",
	LogWarning: "warning",
	LogError:   "error",
	LogFatal:   "fatal",
}

func (l LogLevel) String() string {
	if int(l) < len(logLevelNames) {
		return logLevelNames[l]
	}
	return "unknown"
}

// LogSink receives log records emitted by the native engine. The engine
// stores a reference to its sink inside configuration structures and calls
// it from whichever component produced the record.
type LogSink interface {
	Log(level LogLevel, category string, msg string)
}
