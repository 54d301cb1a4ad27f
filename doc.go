// Package opcuaruntime provides a memory-safe Go access layer over the
// native data-type system of an OPC UA protocol engine.
//
// The engine represents every protocol value as a tagged memory block
// described by a runtime type-descriptor table, and expects callers to
// manage allocation, copying, and destruction through engine-provided
// functions. This library confines the required memory reinterpretation
// to one narrow module and builds everything else on its guarantees.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	opcuaruntime/        Root package with the LogSink contract and log levels
//	├── sys/             Native engine ABI surface: scalar types, the
//	│                    process-wide type-descriptor table, status codes,
//	│                    logger block, server configuration routines
//	├── ua/              Transparent wrappers, ownership containers, default
//	│                    configuration assembly
//	├── errors/          Structured error types for status translation
//	└── cmd/datatypes/   CLI for inspecting the descriptor table
//
// # Quick Start
//
// Build a ready-to-use server configuration and hand it to a server:
//
//	config := ua.DefaultServerConfig()
//	defer config.Drop()
//
//	fmt.Println(config.Config().Port) // 4840
//
// Wrap a host primitive and read it back through its native view:
//
//	v := ua.NewInt16(-1)
//	fmt.Println(v.Value()) // -1
//
// # Safety Model
//
// Three rules cover every operation in this module:
//
//   - A wrapper value always holds a valid bit pattern of its native type.
//     Constructors guarantee this; it is never re-checked at runtime.
//   - A native resource is owned by exactly one container at a time and
//     freed exactly once. Transfers are explicit.
//   - Precondition violations (accessing a released container, a missing
//     type descriptor) panic. They indicate broken invariants, not bad
//     input, and are never recovered at this layer.
package opcuaruntime
