package sys

import "fmt"

// StatusCode is the engine's 32-bit status word. The top two bits carry the
// severity: 00 good, 01 uncertain, 10 bad.
type StatusCode uint32

const (
	StatusGood             StatusCode = 0x00000000
	StatusUncertain        StatusCode = 0x40000000
	StatusBadInternalError StatusCode = 0x80020000
	StatusBadOutOfMemory   StatusCode = 0x80030000
)

// IsGood reports whether the severity is good.
func (s StatusCode) IsGood() bool {
	return s>>30 == 0
}

// IsBad reports whether the severity is bad.
func (s StatusCode) IsBad() bool {
	return s>>30 == 2
}

var statusNames = map[StatusCode]string{
	StatusGood:             "Good",
	StatusUncertain:        "Uncertain",
	StatusBadInternalError: "BadInternalError",
	StatusBadOutOfMemory:   "BadOutOfMemory",
}

func (s StatusCode) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StatusCode(0x%08X)", uint32(s))
}
