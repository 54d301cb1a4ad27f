// Package sys exposes the native engine's C-style data-type system.
//
// The engine describes every supported data type with an entry in a
// process-wide, read-only descriptor table. A descriptor carries the type's
// memory layout and the generic operations (clear, copy, order) the engine
// uses to manipulate values of that type without knowing their shape.
//
// # Descriptor Table
//
// The table is indexed by TypeIndex constants and never changes after
// process start:
//
//	Index  Name        Node ID  Size  Align
//	─────────────────────────────────────────
//	0      Boolean     ns=0;i=1    1     1
//	1      SByte       ns=0;i=2    1     1
//	2      Byte        ns=0;i=3    1     1
//	3      Int16       ns=0;i=4    2     2
//	4      UInt16      ns=0;i=5    2     2
//	5      Int32       ns=0;i=6    4     4
//	6      UInt32      ns=0;i=7    4     4
//	7      Int64       ns=0;i=8    8     8
//	8      UInt64      ns=0;i=9    8     8
//	9      Float       ns=0;i=10   4     4
//	10     Double      ns=0;i=11   8     8
//	11     StatusCode  ns=0;i=19   4     4
//
// # Value Representation
//
// Values are raw memory blocks. The generic entry points Clear, Copy, and
// Order take unsafe pointers to blocks laid out as the descriptor's type;
// passing a block of any other shape is undefined behavior. Zeroed memory
// is a well-formed, minimally configured value for every structure in this
// package.
//
// # Ownership
//
// Structures that own resources (ServerConfig) come with an explicit clean
// routine. Callers manage lifetime manually; the ua package wraps this
// surface with containers that make cleanup happen exactly once.
package sys
