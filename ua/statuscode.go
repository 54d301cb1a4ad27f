package ua

import (
	"unsafe"

	"github.com/wippyai/opcua-runtime/sys"
)

// StatusCode wraps the native status word returned by engine calls
// (data type ns=0;i=19).
type StatusCode struct {
	inner sys.StatusCode
}

var (
	_ [unsafe.Sizeof(StatusCode{})]byte  = [unsafe.Sizeof(sys.StatusCode(0))]byte{}
	_ [unsafe.Alignof(StatusCode{})]byte = [unsafe.Alignof(sys.StatusCode(0))]byte{}
)

var _ DataType = (*StatusCode)(nil)

// NewStatusCode wraps code. Construction is a pure bit copy.
func NewStatusCode(code sys.StatusCode) StatusCode {
	return fromBits[StatusCode](&code)
}

// Code returns the wrapped native status code.
func (s StatusCode) Code() sys.StatusCode {
	return s.inner
}

// IsGood reports whether the severity is good.
func (s StatusCode) IsGood() bool {
	return s.inner.IsGood()
}

// IsBad reports whether the severity is bad.
func (s StatusCode) IsBad() bool {
	return s.inner.IsBad()
}

func (s StatusCode) String() string {
	return s.inner.String()
}

// View reinterprets s as its native type. The returned pointer shares s's
// storage and carries no ownership.
func (s *StatusCode) View() *sys.StatusCode {
	return viewAs[sys.StatusCode](s)
}

// TypeIndex identifies the descriptor-table entry for StatusCode.
func (StatusCode) TypeIndex() sys.TypeIndex {
	return sys.TypeIndexStatusCode
}

// DataType returns the static type descriptor for StatusCode.
func (StatusCode) DataType() *sys.DataType {
	return descriptor(sys.TypeIndexStatusCode)
}
