package domain

import "time"

// NoResponseBody is shown when a response carries no text at all.
const NoResponseBody = "No response body"

// ResponseResult is the outcome of one submission.
// StatusCode is nil when the request never produced an HTTP response.
type ResponseResult struct {
	StatusCode   *int
	BodyText     string
	ErrorMessage string

	ContentType string
	Size        int
	Duration    time.Duration
}

// Failed reports whether the submission ended in an error instead of a response.
func (r ResponseResult) Failed() bool {
	return r.ErrorMessage != ""
}

// StatusCodeOrZero returns the status code, or 0 when absent.
func (r ResponseResult) StatusCodeOrZero() int {
	if r.StatusCode == nil {
		return 0
	}
	return *r.StatusCode
}
