package ua

import (
	"math"
	"reflect"
	"testing"

	"github.com/wippyai/opcua-runtime/sys"
)

func checkRoundTrip[H comparable, W interface{ Value() H }](t *testing.T, construct func(H) W, values []H) {
	t.Helper()
	for _, v := range values {
		if got := construct(v).Value(); got != v {
			t.Errorf("round trip of %v: got %v", v, got)
		}
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	checkRoundTrip(t, NewBoolean, []bool{true, false})
}

func TestIntegerRoundTrips(t *testing.T) {
	checkRoundTrip(t, NewSByte, []int8{0, -1, math.MinInt8, math.MaxInt8})
	checkRoundTrip(t, NewByte, []uint8{0, 1, math.MaxUint8})
	checkRoundTrip(t, NewInt16, []int16{0, -1, math.MinInt16, math.MaxInt16})
	checkRoundTrip(t, NewUInt16, []uint16{0, 1, math.MaxUint16})
	checkRoundTrip(t, NewInt32, []int32{0, -1, math.MinInt32, math.MaxInt32})
	checkRoundTrip(t, NewUInt32, []uint32{0, 1, math.MaxUint32})
	checkRoundTrip(t, NewInt64, []int64{0, -1, math.MinInt64, math.MaxInt64})
	checkRoundTrip(t, NewUInt64, []uint64{0, 1, math.MaxUint64})
}

func TestFloatRoundTrips(t *testing.T) {
	floats := []float32{0, float32(math.Copysign(0, -1)), 1.5, -1.5,
		math.SmallestNonzeroFloat32, math.MaxFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN())}
	for _, v := range floats {
		got := NewFloat(v).Value()
		if math.Float32bits(got) != math.Float32bits(v) {
			t.Errorf("Float round trip of %v: got %v", v, got)
		}
	}

	doubles := []float64{0, math.Copysign(0, -1), 1.5, -1.5,
		math.SmallestNonzeroFloat64, math.MaxFloat64,
		math.Inf(1), math.Inf(-1), math.NaN()}
	for _, v := range doubles {
		got := NewDouble(v).Value()
		if math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("Double round trip of %v: got %v", v, got)
		}
	}
}

func TestViewAliasesWrapper(t *testing.T) {
	v := NewInt16(-1)

	if got := *v.View(); got != sys.Int16(-1) {
		t.Fatalf("Expected native view -1, got %d", got)
	}

	// The view shares the wrapper's storage; writes are visible both ways.
	*v.View() = 7
	if got := v.Value(); got != 7 {
		t.Fatalf("Expected 7 after write through view, got %d", got)
	}

	if v.Ptr() != unsafePtr(v.View()) {
		t.Fatal("Ptr and View should address the same storage")
	}
}

func TestDescriptorMatchesLayout(t *testing.T) {
	wrappers := []DataType{
		NewBoolean(false), NewSByte(0), NewByte(0),
		NewInt16(0), NewUInt16(0), NewInt32(0), NewUInt32(0),
		NewInt64(0), NewUInt64(0), NewFloat(0), NewDouble(0),
		NewStatusCode(sys.StatusGood),
	}

	for _, w := range wrappers {
		dt := w.DataType()
		rt := reflect.TypeOf(w)
		if rt.Size() != dt.MemSize {
			t.Errorf("%s: wrapper size %d, descriptor size %d", dt.Name, rt.Size(), dt.MemSize)
		}
		if uintptr(rt.Align()) != dt.Align {
			t.Errorf("%s: wrapper align %d, descriptor align %d", dt.Name, rt.Align(), dt.Align)
		}
		if sys.TypeDescriptor(w.TypeIndex()) != dt {
			t.Errorf("%s: descriptor not resolved from the table", dt.Name)
		}
	}
}

func TestConcreteScenarios(t *testing.T) {
	if got := NewBoolean(true).Value(); got != true {
		t.Fatalf("Expected true, got %v", got)
	}
	if got := NewInt16(-1).Value(); got != -1 {
		t.Fatalf("Expected -1, got %d", got)
	}
}
