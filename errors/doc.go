// Package errors provides structured error types for the opcua-runtime
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: data type name,
// native status code, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindBadStatus).
//		Type("ServerConfig").
//		Status(code).
//		Detail("cannot populate defaults").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadStatus(errors.PhaseConfig, code)
//	err := errors.VerifyGood(errors.PhaseConfig, code)
//
// All errors implement the standard error interface and support
// errors.Is/As.
//
// Within the core packages, precondition violations panic instead of
// returning errors; this package is the translation surface for higher
// layers that turn native status codes into ordinary recoverable errors.
package errors
