package errors

import (
	"fmt"
	"strings"

	"github.com/wippyai/opcua-runtime/sys"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLookup  Phase = "lookup"  // descriptor table access
	PhaseConfig  Phase = "config"  // configuration assembly
	PhaseClear   Phase = "clear"   // resource cleanup
	PhaseRuntime Phase = "runtime" // native engine calls
)

// Kind categorizes the error
type Kind string

const (
	KindBadStatus      Kind = "bad_status"
	KindOutOfMemory    Kind = "out_of_memory"
	KindNullDescriptor Kind = "null_descriptor"
	KindReleased       Kind = "released"
	KindInvalidInput   Kind = "invalid_input"
	KindNotFound       Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Detail   string
	Code     sys.StatusCode
	hasCode  bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.TypeName != "" {
		b.WriteString(" for ")
		b.WriteString(e.TypeName)
	}

	if e.hasCode {
		b.WriteString(": ")
		b.WriteString(e.Code.String())
	}

	if e.Detail != "" {
		if e.hasCode {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the data type name
func (b *Builder) Type(name string) *Builder {
	b.err.TypeName = name
	return b
}

// Status sets the native status code
func (b *Builder) Status(code sys.StatusCode) *Builder {
	b.err.Code = code
	b.err.hasCode = true
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// BadStatus creates an error from a non-good native status code. Codes with
// an out-of-memory condition are classified as KindOutOfMemory.
func BadStatus(phase Phase, code sys.StatusCode) *Error {
	kind := KindBadStatus
	if code == sys.StatusBadOutOfMemory {
		kind = KindOutOfMemory
	}
	return &Error{
		Phase:   phase,
		Kind:    kind,
		Code:    code,
		hasCode: true,
	}
}

// VerifyGood returns nil for a good status code and a BadStatus error
// otherwise.
func VerifyGood(phase Phase, code sys.StatusCode) error {
	if code.IsGood() {
		return nil
	}
	return BadStatus(phase, code)
}

// NullDescriptor creates an error for a missing descriptor-table entry
func NullDescriptor(index sys.TypeIndex) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindNullDescriptor,
		Detail: fmt.Sprintf("no descriptor for type index %d", index),
	}
}

// Released creates an error for access to a container that gave up
// ownership
func Released(op string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindReleased,
		Detail: fmt.Sprintf("%s on released container", op),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
