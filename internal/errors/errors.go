package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrRequestFailed      = errors.New("request failed")
	ErrBusy               = errors.New("a request is already in flight")
	ErrUnknownEnvironment = errors.New("unknown environment")
	ErrStorage            = errors.New("storage unavailable")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// RequestError carries the user-visible message for a failed submission
// alongside the kind it belongs to (one of the sentinels above).
type RequestError struct {
	Kind    error
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

// Is matches the error kind so callers can use errors.Is(err, ErrRequestFailed).
func (e *RequestError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// InvalidBody builds an InvalidRequestBody error from a JSON parse failure.
func InvalidBody(cause error) *RequestError {
	return &RequestError{
		Kind:    ErrInvalidRequestBody,
		Message: "Invalid JSON body: " + cause.Error(),
		Err:     cause,
	}
}

// RequestFailed builds a RequestFailed error from a transport failure.
func RequestFailed(cause error) *RequestError {
	return &RequestError{
		Kind:    ErrRequestFailed,
		Message: "Request failed: " + cause.Error(),
		Err:     cause,
	}
}
