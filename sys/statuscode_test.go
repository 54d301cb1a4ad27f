package sys

import "testing"

func TestStatusCodeSeverity(t *testing.T) {
	if !StatusGood.IsGood() {
		t.Fatal("StatusGood should be good")
	}
	if StatusGood.IsBad() {
		t.Fatal("StatusGood should not be bad")
	}
	if StatusUncertain.IsGood() {
		t.Fatal("StatusUncertain should not be good")
	}
	if StatusUncertain.IsBad() {
		t.Fatal("StatusUncertain should not be bad")
	}
	if StatusBadOutOfMemory.IsGood() {
		t.Fatal("StatusBadOutOfMemory should not be good")
	}
	if !StatusBadOutOfMemory.IsBad() {
		t.Fatal("StatusBadOutOfMemory should be bad")
	}
}

func TestStatusCodeString(t *testing.T) {
	if got := StatusGood.String(); got != "Good" {
		t.Errorf("Expected 'Good', got %q", got)
	}
	if got := StatusBadOutOfMemory.String(); got != "BadOutOfMemory" {
		t.Errorf("Expected 'BadOutOfMemory', got %q", got)
	}
	if got := StatusCode(0x80FF0000).String(); got != "StatusCode(0x80FF0000)" {
		t.Errorf("Unexpected fallback name: %q", got)
	}
}
