package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestFailed_MessageAndKind(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	err := RequestFailed(cause)

	assert.Equal(t, "Request failed: dial tcp 127.0.0.1:1: connect: connection refused", err.Error())
	assert.True(t, errors.Is(err, ErrRequestFailed))
	assert.False(t, errors.Is(err, ErrInvalidRequestBody))
	assert.True(t, errors.Is(err, cause))
}

func TestInvalidBody_Wrapped(t *testing.T) {
	err := fmt.Errorf("prepare: %w", InvalidBody(errors.New("unexpected end of JSON input")))

	assert.True(t, errors.Is(err, ErrInvalidRequestBody))

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "Invalid JSON body: unexpected end of JSON input", reqErr.Message)
}

func TestValidationError(t *testing.T) {
	assert.Equal(t, "method: unsupported", ValidationError{Field: "method", Message: "unsupported"}.Error())
	assert.Equal(t, "unsupported", ValidationError{Message: "unsupported"}.Error())
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantSev   ErrorSeverity
	}{
		{"invalid body", InvalidBody(errors.New("bad")), "Invalid Request Body", SeverityError},
		{"request failed", RequestFailed(errors.New("refused")), "Request Failed", SeverityError},
		{"timeout", RequestFailed(context.DeadlineExceeded), "Request Timeout", SeverityError},
		{"busy", ErrBusy, "Request In Progress", SeverityInfo},
		{"cancelled", context.Canceled, "Cancelled", SeverityInfo},
		{"storage", fmt.Errorf("save: %w", ErrStorage), "Could Not Save", SeverityWarning},
		{"environment", fmt.Errorf("%w: staging", ErrUnknownEnvironment), "Unknown Environment", SeverityError},
		{"validation", ValidationError{Field: "method", Message: "bad method"}, "Validation Error", SeverityError},
		{"unknown", errors.New("mystery"), "Unexpected Error", SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uiErr := ClassifyError(tt.err)
			require.NotNil(t, uiErr)
			assert.Equal(t, tt.wantTitle, uiErr.Title)
			assert.Equal(t, tt.wantSev, uiErr.Severity)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError_RequestFailedKeepsMessage(t *testing.T) {
	uiErr := ClassifyError(RequestFailed(errors.New("no such host")))
	assert.Equal(t, "Request failed: no such host", uiErr.Message)
}
