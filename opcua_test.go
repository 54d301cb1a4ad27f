package opcuaruntime

import "testing"

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogTrace, "trace"},
		{LogDebug, "debug"},
		{LogInfo, "info"},
		{LogWarning, "warning"},
		{LogError, "error"},
		{LogFatal, "fatal"},
		{LogLevel(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d): expected %q, got %q", tt.level, tt.want, got)
		}
	}
}
