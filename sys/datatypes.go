package sys

import (
	"cmp"
	"unsafe"
)

// TypeIndex identifies an entry in the engine's descriptor table.
type TypeIndex uint16

const (
	TypeIndexBoolean TypeIndex = iota
	TypeIndexSByte
	TypeIndexByte
	TypeIndexInt16
	TypeIndexUInt16
	TypeIndexInt32
	TypeIndexUInt32
	TypeIndexInt64
	TypeIndexUInt64
	TypeIndexFloat
	TypeIndexDouble
	TypeIndexStatusCode

	TypeCount
)

// DataType describes a data type's memory layout and the generic operations
// the engine uses on values of that type. Pointers passed to the operations
// must refer to blocks of MemSize bytes laid out as the described type.
type DataType struct {
	Name        string
	NodeID      uint16 // numeric identifier in namespace 0
	MemSize     uintptr
	Align       uintptr
	PointerFree bool

	Clear func(p unsafe.Pointer)
	Copy  func(dst, src unsafe.Pointer) StatusCode
	Order func(a, b unsafe.Pointer) int
}

// Types is the process-wide descriptor table. It is read-only after process
// start; callers must not modify entries.
var Types = [TypeCount]DataType{
	TypeIndexBoolean:    scalar("Boolean", 1, orderBoolean),
	TypeIndexSByte:      scalar("SByte", 2, cmp.Compare[SByte]),
	TypeIndexByte:       scalar("Byte", 3, cmp.Compare[Byte]),
	TypeIndexInt16:      scalar("Int16", 4, cmp.Compare[Int16]),
	TypeIndexUInt16:     scalar("UInt16", 5, cmp.Compare[UInt16]),
	TypeIndexInt32:      scalar("Int32", 6, cmp.Compare[Int32]),
	TypeIndexUInt32:     scalar("UInt32", 7, cmp.Compare[UInt32]),
	TypeIndexInt64:      scalar("Int64", 8, cmp.Compare[Int64]),
	TypeIndexUInt64:     scalar("UInt64", 9, cmp.Compare[UInt64]),
	TypeIndexFloat:      scalar("Float", 10, cmp.Compare[Float]),
	TypeIndexDouble:     scalar("Double", 11, cmp.Compare[Double]),
	TypeIndexStatusCode: scalar("StatusCode", 19, cmp.Compare[StatusCode]),
}

// TypeDescriptor returns the descriptor for idx, or nil if idx is not a
// known type.
func TypeDescriptor(idx TypeIndex) *DataType {
	if idx >= TypeCount {
		return nil
	}
	return &Types[idx]
}

// Clear resets the block at p to a freshly initialized state, freeing any
// resources it owns.
func Clear(p unsafe.Pointer, dt *DataType) {
	if dt.Clear != nil {
		dt.Clear(p)
	}
}

// Copy performs a deep copy of the block at src into dst. dst is
// overwritten without being cleared first.
func Copy(dst, src unsafe.Pointer, dt *DataType) StatusCode {
	if dt.Copy == nil {
		return StatusBadInternalError
	}
	return dt.Copy(dst, src)
}

// Order compares the blocks at a and b, returning -1, 0, or 1.
func Order(a, b unsafe.Pointer, dt *DataType) int {
	if dt.Order == nil {
		return 0
	}
	return dt.Order(a, b)
}

// scalar builds the descriptor for a pointer-free scalar type.
func scalar[T any](name string, nodeID uint16, order func(a, b T) int) DataType {
	var zero T
	return DataType{
		Name:        name,
		NodeID:      nodeID,
		MemSize:     unsafe.Sizeof(zero),
		Align:       unsafe.Alignof(zero),
		PointerFree: true,
		Clear: func(p unsafe.Pointer) {
			*(*T)(p) = zero
		},
		Copy: func(dst, src unsafe.Pointer) StatusCode {
			*(*T)(dst) = *(*T)(src)
			return StatusGood
		},
		Order: func(a, b unsafe.Pointer) int {
			return order(*(*T)(a), *(*T)(b))
		},
	}
}

func orderBoolean(a, b Boolean) int {
	switch {
	case a == b:
		return 0
	case bool(b):
		return -1
	default:
		return 1
	}
}
