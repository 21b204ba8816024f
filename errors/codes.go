package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument contract errors
const (
	// ErrCodeTypeMismatch indicates a value has the wrong type and could not be coerced.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeUnexpectedValue indicates a value has the right type but falls outside
	// its allowed choices, pattern or regex.
	ErrCodeUnexpectedValue ErrorCode = "UNEXPECTED_VALUE"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// contractCodes are raised for caller input-contract violations.
var contractCodes = map[ErrorCode]bool{
	ErrCodeTypeMismatch:    true,
	ErrCodeUnexpectedValue: true,
	ErrCodeInvalidInput:    true,
	ErrCodeMissingField:    true,
	ErrCodeInvalidFormat:   true,
}

// IsContractCode returns true if the code signals a caller input-contract violation.
func IsContractCode(code ErrorCode) bool {
	return contractCodes[code]
}
