package sys

// Native scalar types. Each matches the engine ABI layout exactly; the ua
// package proves its wrappers layout-compatible against these at build time.
type (
	Boolean bool
	SByte   int8
	Byte    uint8
	Int16   int16
	UInt16  uint16
	Int32   int32
	UInt32  uint32
	Int64   int64
	UInt64  uint64
	Float   float32
	Double  float64
)
