package errors

import (
	"context"
	"errors"
)

// ErrorSeverity indicates how loudly the UI reports an error.
type ErrorSeverity int

const (
	SeverityInfo    ErrorSeverity = iota // not worth a dialog
	SeverityWarning                      // something was not saved
	SeverityError                        // the action failed
)

// UIError is an error with the text the error dialog shows.
type UIError struct {
	Err      error
	Severity ErrorSeverity
	Title    string
	Message  string
	Recovery []string // suggested actions, one per bullet
	Details  string   // technical text, collapsed by default
}

func (e UIError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Title
}

// Unwrap returns the underlying error.
func (e UIError) Unwrap() error {
	return e.Err
}

// classification matches one error kind. Rules are checked in order.
type classification struct {
	kind     error
	severity ErrorSeverity
	title    string
	message  string // empty means use the error's own message
	recovery []string
	details  bool
}

var classifications = []classification{
	{
		kind:     ErrInvalidRequestBody,
		severity: SeverityError,
		title:    "Invalid Request Body",
		recovery: []string{"Fix the JSON body and send again"},
	},
	{
		kind:     context.DeadlineExceeded,
		severity: SeverityError,
		title:    "Request Timeout",
		recovery: []string{"Try again", "Increase the request timeout setting"},
	},
	{
		kind:     ErrRequestFailed,
		severity: SeverityError,
		title:    "Request Failed",
		recovery: []string{
			"Check that the server is running",
			"Verify the base URL and path",
			"Check your network connection",
		},
	},
	{
		kind:     ErrBusy,
		severity: SeverityInfo,
		title:    "Request In Progress",
		message:  "Wait for the current request to finish.",
	},
	{
		kind:     context.Canceled,
		severity: SeverityInfo,
		title:    "Cancelled",
		message:  "The operation was cancelled.",
	},
	{
		kind:     ErrStorage,
		severity: SeverityWarning,
		title:    "Could Not Save",
		message:  "Saved base URLs could not be written.",
		recovery: []string{"Check the storage directory permissions"},
		details:  true,
	},
	{
		kind:     ErrUnknownEnvironment,
		severity: SeverityError,
		title:    "Unknown Environment",
		recovery: []string{"Choose development or production"},
	},
}

// ClassifyError maps err to the title, message and recovery hints the error
// dialog shows. It returns nil for a nil error.
func ClassifyError(err error) *UIError {
	if err == nil {
		return nil
	}

	var uiErr *UIError
	if errors.As(err, &uiErr) {
		return uiErr
	}

	message := err.Error()
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		message = reqErr.Message
	}

	for _, c := range classifications {
		if !errors.Is(err, c.kind) {
			continue
		}
		out := &UIError{
			Err:      err,
			Severity: c.severity,
			Title:    c.title,
			Message:  message,
			Recovery: c.recovery,
		}
		if c.message != "" {
			out.Message = c.message
		}
		if c.details {
			out.Details = message
		}
		return out
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return &UIError{
			Err:      err,
			Severity: SeverityError,
			Title:    "Validation Error",
			Message:  validationErr.Message,
			Recovery: []string{"Correct the field value and try again"},
			Details:  validationErr.Error(),
		}
	}

	return &UIError{
		Err:      err,
		Severity: SeverityError,
		Title:    "Unexpected Error",
		Message:  "An unexpected error occurred.",
		Recovery: []string{"Try again"},
		Details:  message,
	}
}
