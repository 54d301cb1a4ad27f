package ua

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/opcua-runtime/errors"
	"github.com/wippyai/opcua-runtime/sys"
)

// ServerConfig owns a native server configuration until a server takes it
// over.
type ServerConfig struct {
	owned *Owned[sys.ServerConfig]
}

// NewServerConfig creates a zero-initialized configuration. All attributes
// are well-defined; more may need to be set before the value is actually
// useful.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{owned: InitOwned(sys.ServerConfigClean)}
}

// ServerConfigFromRaw takes ownership of config. When the wrapper is
// dropped, allocations held by the native value are cleaned up.
//
// Ownership of config passes to the wrapper. This must only be used for
// values that are not embedded in other owning structures, which would also
// attempt to free them.
func ServerConfigFromRaw(config sys.ServerConfig) *ServerConfig {
	return &ServerConfig{owned: OwnRaw(config, sys.ServerConfigClean)}
}

// IntoRaw gives up ownership and returns the native value. The value must
// be re-wrapped with ServerConfigFromRaw, cleaned manually, or copied into
// an owning value (a started server) to free internal allocations and not
// leak memory. The wrapper performs no cleanup afterwards.
func (c *ServerConfig) IntoRaw() sys.ServerConfig {
	return c.owned.Release()
}

// Config returns exclusive access to the native value.
//
// The value is owned by the wrapper. Ownership must not be given away, in
// whole or in parts; engine calls that consume the value by pointer must be
// followed by IntoRaw to record the transfer.
func (c *ServerConfig) Config() *sys.ServerConfig {
	return c.owned.Value()
}

// Ptr returns the native value as a raw pointer for engine calls. The
// transfer rules of Config apply.
func (c *ServerConfig) Ptr() unsafe.Pointer {
	return c.owned.Ptr()
}

// Held reports whether the wrapper still owns its configuration.
func (c *ServerConfig) Held() bool {
	return c.owned.Held()
}

// Drop cleans up the native value unless ownership has passed to a server.
// Safe to defer unconditionally.
func (c *ServerConfig) Drop() {
	c.owned.Drop()
}

// DefaultServerConfig creates a server configuration on the default port
// 4840 with no server certificate.
func DefaultServerConfig() *ServerConfig {
	config := NewServerConfig()

	// Set the custom logger first. The same logger instance is used as-is
	// inside derived attributes such as the event loop and secure channel
	// blocks, so it must be in place before defaults are populated.
	{
		cfg := config.Config()
		// A logger is only assigned on default-initialized config values:
		// an existing configuration might already share its logger with
		// another structure, so freeing it could not be done safely.
		if cfg.Logging != nil {
			panic("ua: logger already set on default-initialized server config")
		}
		// Ownership of the logger instance passes to the configuration at
		// this point; it is cleaned up by sys.ServerConfigClean.
		cfg.Logging = newSysLogger()
	}

	status := NewStatusCode(sys.ServerConfigSetDefault(config.Config()))
	if err := errors.VerifyGood(errors.PhaseConfig, status.Code()); err != nil {
		// The only possible error here is out-of-memory.
		panic(fmt.Sprintf("ua: set default server config: %v", err))
	}

	return config
}
