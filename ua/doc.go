// Package ua provides safe wrappers over the native data types in sys.
//
// # Transparent Wrappers
//
// Every wrapper type in this package is layout-identical to one native type
// from the sys package. Size and alignment are asserted at build time in
// primitives_gen.go, and every constructor produces a valid native bit
// pattern, so a wrapper pointer can be reinterpreted as a pointer to its
// native type without copying:
//
//	v := ua.NewInt16(-1)
//	native := v.View() // *sys.Int16, shares v's storage
//
// The reinterpretation itself lives in a single file (datatype.go); all
// other code uses the safe accessors. Views share the wrapper's lifetime
// and carry no ownership.
//
// The primitive wrappers (Boolean through Double) are generated from the
// declarative table in internal/mkprimitives; run "go generate ./ua" after
// changing the table.
//
// # Ownership
//
// Native structures that own resources are held in an Owned container. The
// container is a two-state machine:
//
//	          OwnRaw / InitOwned
//	                 │
//	                 ▼
//	             ┌───────┐   Release()   ┌──────────┐
//	             │ owned │ ─────────────▶│ released │
//	             └───────┘               └──────────┘
//	                 │                        │
//	           Drop: clean runs          Drop: no-op
//	             exactly once
//
// Cleanup runs if and only if the container is dropped while still owning
// its value. Callers who pass the held value's pointer to an engine routine
// that consumes it must call Release to record the transfer; failing to do
// so frees the value twice. These aliasing rules are documented caller
// obligations and are not checked at runtime.
//
// Accessing a released container panics: it is a programming error, not a
// recoverable condition.
//
// # Default Configuration
//
// DefaultServerConfig assembles a ready-to-use engine configuration: it
// zero-initializes the structure, installs a zap-backed logger while the
// logger field is still guaranteed unset, and runs the native default
// population which derives port 4840 and propagates the logger reference
// into sub-structures.
package ua
