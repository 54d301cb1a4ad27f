package ua

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/opcua-runtime/sys"
)

// This file is the only place in the module that reinterprets memory.
// Every wrapper type W pairs with a native type N such that the two are
// byte-for-byte identical; primitives_gen.go carries the build-time size
// and alignment assertions backing the casts below. Constructors only ever
// produce valid native bit patterns, so validity is not re-checked here.

// DataType is implemented by every transparent wrapper.
type DataType interface {
	// TypeIndex identifies the wrapper's entry in the descriptor table.
	TypeIndex() sys.TypeIndex

	// DataType returns the wrapper's static type descriptor.
	DataType() *sys.DataType
}

// viewAs reinterprets a wrapper pointer as a pointer to its native type.
// The result shares the wrapper's storage and lifetime.
func viewAs[N, W any](w *W) *N {
	return (*N)(unsafe.Pointer(w))
}

// fromBits copies the bit pattern of a native value into its wrapper type.
func fromBits[W, N any](src *N) W {
	return *(*W)(unsafe.Pointer(src))
}

// descriptor resolves the static descriptor for idx. The table covers all
// supported types, so a miss is a binding misconfiguration, never a runtime
// data error.
func descriptor(idx sys.TypeIndex) *sys.DataType {
	dt := sys.TypeDescriptor(idx)
	if dt == nil {
		panic(fmt.Sprintf("ua: no type descriptor for index %d", idx))
	}
	return dt
}
