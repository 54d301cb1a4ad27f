package ua

import (
	"testing"
	"unsafe"

	"github.com/wippyai/opcua-runtime/sys"
)

func unsafePtr[T any](p *T) unsafe.Pointer {
	return unsafe.Pointer(p)
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic")
		}
	}()
	fn()
}

func TestFromBitsViewAsRoundTrip(t *testing.T) {
	n := sys.Int32(-123456)
	w := fromBits[Int32](&n)

	if got := *viewAs[sys.Int32](&w); got != n {
		t.Fatalf("Expected %d, got %d", n, got)
	}
}

func TestDescriptorResolves(t *testing.T) {
	dt := descriptor(sys.TypeIndexDouble)
	if dt.Name != "Double" {
		t.Fatalf("Expected Double descriptor, got %q", dt.Name)
	}
}

func TestDescriptorUnknownPanics(t *testing.T) {
	// A missing table entry is a binding misconfiguration, not a runtime
	// data error.
	expectPanic(t, func() {
		descriptor(sys.TypeIndex(999))
	})
}
