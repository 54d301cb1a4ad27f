package ua

import (
	"testing"

	"github.com/wippyai/opcua-runtime/sys"
)

func TestStatusCodeWrapper(t *testing.T) {
	good := NewStatusCode(sys.StatusGood)
	if !good.IsGood() || good.IsBad() {
		t.Fatal("StatusGood should be good")
	}
	if good.Code() != sys.StatusGood {
		t.Fatalf("Expected code %v, got %v", sys.StatusGood, good.Code())
	}

	oom := NewStatusCode(sys.StatusBadOutOfMemory)
	if oom.IsGood() || !oom.IsBad() {
		t.Fatal("StatusBadOutOfMemory should be bad")
	}
	if got := oom.String(); got != "BadOutOfMemory" {
		t.Errorf("Expected 'BadOutOfMemory', got %q", got)
	}
}

func TestStatusCodeView(t *testing.T) {
	s := NewStatusCode(sys.StatusGood)

	*s.View() = sys.StatusBadInternalError
	if !s.IsBad() {
		t.Fatal("Expected write through view to be visible")
	}
}
