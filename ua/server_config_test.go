package ua

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	opcuaruntime "github.com/wippyai/opcua-runtime"
	"github.com/wippyai/opcua-runtime/sys"
)

func TestDefaultServerConfig(t *testing.T) {
	config := DefaultServerConfig()
	defer config.Drop()

	cfg := config.Config()
	if cfg.Port != sys.DefaultPort {
		t.Fatalf("Expected port %d, got %d", sys.DefaultPort, cfg.Port)
	}
	if cfg.Logging == nil {
		t.Fatal("Expected logger to be set")
	}
	if cfg.Logging.Log == nil {
		t.Fatal("Expected logger callback to be set")
	}
	if cfg.EventLoop.Logger != cfg.Logging {
		t.Fatal("Expected event loop to alias the configuration logger")
	}
}

func TestServerConfigDropReleasesLogger(t *testing.T) {
	config := DefaultServerConfig()
	logging := config.Config().Logging

	config.Drop()
	if config.Held() {
		t.Fatal("Expected config to be released after drop")
	}
	if logging.Log != nil {
		t.Fatal("Expected logger to be disarmed by drop")
	}

	// Dropping again must not fault.
	config.Drop()
}

func TestServerConfigIntoRaw(t *testing.T) {
	config := DefaultServerConfig()

	raw := config.IntoRaw()
	if raw.Port != sys.DefaultPort {
		t.Fatalf("Expected port %d on released value, got %d", sys.DefaultPort, raw.Port)
	}
	if raw.Logging == nil || raw.Logging.Log == nil {
		t.Fatal("Expected released value to carry a live logger")
	}

	// Ownership was given up; the wrapper must not clean on drop.
	config.Drop()
	if raw.Logging.Log == nil {
		t.Fatal("Drop after IntoRaw must not touch the released value")
	}

	// Accessing the released wrapper is a programming error.
	expectPanic(t, func() { config.Config() })

	// The caller is now responsible for the value.
	sys.ServerConfigClean(&raw)
	if raw.Logging != nil {
		t.Fatal("Expected manual clean to drop the logger")
	}
}

func TestServerConfigFromRawRoundTrip(t *testing.T) {
	raw := sys.ServerConfig{Port: 14840}

	config := ServerConfigFromRaw(raw)
	if got := config.Config().Port; got != 14840 {
		t.Fatalf("Expected port 14840, got %d", got)
	}

	back := config.IntoRaw()
	if back.Port != 14840 {
		t.Fatalf("Expected port 14840 back, got %d", back.Port)
	}
}

func TestDefaultServerConfigLoggerForwards(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	config := DefaultServerConfig()
	defer config.Drop()

	cfg := config.Config()
	cfg.Logging.Log(opcuaruntime.LogWarning, sys.CategoryServer, "shutting down")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Errorf("Expected warn level, got %v", entries[0].Level)
	}
	if entries[0].Message != "shutting down" {
		t.Errorf("Unexpected message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["category"]; got != sys.CategoryServer {
		t.Errorf("Expected category %q, got %v", sys.CategoryServer, got)
	}
}
