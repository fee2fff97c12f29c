package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Caller errors
const (
	// ErrCodeInvalidArgument indicates invalid configuration input, such as
	// half-specified credentials.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidInput indicates an endpoint parameter precondition failed.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required parameter is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Payload errors
const (
	// ErrCodeContentFormat indicates a response body that is malformed JSON or
	// whose top-level value is neither an object nor an array.
	ErrCodeContentFormat ErrorCode = "CONTENT_FORMAT"
	// ErrCodeEncode indicates a request body that could not be serialized.
	ErrCodeEncode ErrorCode = "ENCODE_FAILED"
)

// Connection/Availability errors (retryable)
const (
	// ErrCodeConnectionFailed indicates a failed connection to the remote API.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the exchange timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeExternalService indicates the remote API answered with a failure status.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

// ErrCodeInternal indicates a library bug or misuse, such as firing a request twice.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeExternalService:  true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
