// Package errors provides the structured error type used across restkit.
//
// Every failure is an *AppError carrying a machine-readable ErrorCode, a
// human message, an HTTP status suitable for an API boundary and optional
// details. Argument checks raise exactly two codes: TYPE_MISMATCH when the
// type contract is violated and UNEXPECTED_VALUE when a well-typed value is
// outside its allowed set, pattern or regex.
package errors
