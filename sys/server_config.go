package sys

// DefaultPort is the registered OPC UA TCP port derived during default
// population when no port has been set.
const DefaultPort uint16 = 4840

const defaultTokenLifetimeMS uint32 = 600_000

// BuildInfo identifies the server software.
type BuildInfo struct {
	ProductURI       string
	ManufacturerName string
	ProductName      string
	SoftwareVersion  string
}

// EventLoop is the engine's I/O driver block. Default population copies the
// configuration logger reference here; the event loop does not own it.
type EventLoop struct {
	Logger *Logger
}

// SecureChannelConfig parameterizes secure channel handling. The logger
// reference is copied in during default population and not owned here.
type SecureChannelConfig struct {
	Logger          *Logger
	TokenLifetimeMS uint32
}

// ServerConfig is the native server configuration block. Zeroed memory is a
// well-formed, minimally configured value. The instance behind Logging is
// owned by the configuration; EventLoop and SecureChannel only alias it.
type ServerConfig struct {
	Logging *Logger

	Port            uint16
	MaxSessions     uint16
	ApplicationURI  string
	ApplicationName string
	BuildInfo       BuildInfo

	EventLoop     EventLoop
	SecureChannel SecureChannelConfig
}

// ServerConfigSetDefault populates the remaining defaults on config and
// propagates the already-installed logger reference into the event loop and
// secure channel blocks. A port set beforehand is kept. The only failure
// mode is allocation exhaustion.
func ServerConfigSetDefault(config *ServerConfig) StatusCode {
	if config == nil {
		return StatusBadInternalError
	}

	if config.Port == 0 {
		config.Port = DefaultPort
	}
	config.MaxSessions = 100
	config.ApplicationURI = "urn:opcua-runtime:server:application"
	config.ApplicationName = "opcua-runtime server"
	config.BuildInfo = BuildInfo{
		ProductURI:       "https://github.com/wippyai/opcua-runtime",
		ManufacturerName: "opcua-runtime",
		ProductName:      "opcua-runtime OPC UA server",
		SoftwareVersion:  "0.1.0",
	}

	config.EventLoop.Logger = config.Logging
	config.SecureChannel.Logger = config.Logging
	config.SecureChannel.TokenLifetimeMS = defaultTokenLifetimeMS

	return StatusGood
}

// ServerConfigClean frees everything owned by config and resets it to the
// zero value. The logger instance is referenced from several sub-structures
// but owned by Logging alone; it is cleared exactly once.
func ServerConfigClean(config *ServerConfig) {
	if config == nil {
		return
	}

	LoggerClear(config.Logging)
	*config = ServerConfig{}
}
