package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/opcua-runtime/sys"
)

func TestErrorMessage(t *testing.T) {
	err := New(PhaseConfig, KindBadStatus).
		Type("ServerConfig").
		Status(sys.StatusBadInternalError).
		Detail("cannot populate defaults").
		Build()

	msg := err.Error()
	for _, want := range []string{"[config]", "bad_status", "ServerConfig", "BadInternalError", "cannot populate defaults"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q, got %q", want, msg)
		}
	}
}

func TestBadStatusClassifiesOOM(t *testing.T) {
	err := BadStatus(PhaseConfig, sys.StatusBadOutOfMemory)
	if err.Kind != KindOutOfMemory {
		t.Fatalf("Expected KindOutOfMemory, got %v", err.Kind)
	}

	err = BadStatus(PhaseConfig, sys.StatusBadInternalError)
	if err.Kind != KindBadStatus {
		t.Fatalf("Expected KindBadStatus, got %v", err.Kind)
	}
}

func TestVerifyGood(t *testing.T) {
	if err := VerifyGood(PhaseConfig, sys.StatusGood); err != nil {
		t.Fatalf("Expected nil for good status, got %v", err)
	}
	if err := VerifyGood(PhaseConfig, sys.StatusBadOutOfMemory); err == nil {
		t.Fatal("Expected error for bad status")
	}
}

func TestErrorIs(t *testing.T) {
	err := BadStatus(PhaseConfig, sys.StatusBadOutOfMemory)
	target := &Error{Phase: PhaseConfig, Kind: KindOutOfMemory}

	if !stderrors.Is(err, target) {
		t.Fatal("Expected errors.Is to match on phase and kind")
	}

	other := &Error{Phase: PhaseLookup, Kind: KindOutOfMemory}
	if stderrors.Is(err, other) {
		t.Fatal("Expected errors.Is to reject different phase")
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(PhaseRuntime, KindInvalidInput, cause, "engine call failed")

	if !stderrors.Is(err, cause) {
		t.Fatal("Expected cause to be reachable through Unwrap")
	}
	if !strings.Contains(err.Error(), "caused by: boom") {
		t.Errorf("Expected cause in message, got %q", err.Error())
	}
}
