package model

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2/data/binding"

	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/format"
)

// ApplicationState represents the centralized application state with Fyne data bindings.
// All UI components bind to these values for reactive updates.
type ApplicationState struct {
	// Active environment name ("development" or "production")
	Environment binding.String

	Request  *RequestState
	Response *ResponseState
	Status   *StatusUIState
}

// NewApplicationState creates a new ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	env := binding.NewString()
	_ = env.Set(string(domain.EnvDevelopment))

	return &ApplicationState{
		Environment: env,
		Request:     NewRequestState(),
		Response:    NewResponseState(),
		Status:      NewStatusUIState(),
	}
}

// RequestState represents the request form.
type RequestState struct {
	Method  binding.String
	BaseURL binding.String
	Path    binding.String
	Query   binding.String
	UseAuth binding.Bool
	Token   binding.String
	Body    binding.String
}

// NewRequestState creates a new RequestState with initialized bindings.
func NewRequestState() *RequestState {
	method := binding.NewString()
	_ = method.Set(string(domain.MethodGet))

	return &RequestState{
		Method:  method,
		BaseURL: binding.NewString(),
		Path:    binding.NewString(),
		Query:   binding.NewString(),
		UseAuth: binding.NewBool(),
		Token:   binding.NewString(),
		Body:    binding.NewString(),
	}
}

// Snapshot reads the form into a fresh RequestConfig.
func (r *RequestState) Snapshot() (domain.RequestConfig, error) {
	methodText, _ := r.Method.Get()
	method, err := domain.ParseMethod(methodText)
	if err != nil {
		return domain.RequestConfig{}, err
	}

	cfg := domain.RequestConfig{Method: method}
	cfg.BaseURL, _ = r.BaseURL.Get()
	cfg.Path, _ = r.Path.Get()
	cfg.QueryString, _ = r.Query.Get()
	cfg.UseAuth, _ = r.UseAuth.Get()
	cfg.Token, _ = r.Token.Get()
	cfg.JSONBody, _ = r.Body.Get()
	return cfg, nil
}

// ResponseState represents the state of the response panel.
type ResponseState struct {
	TextData binding.String // Formatted response body
	Loading  binding.Bool   // Whether request is in progress
	Error    binding.String // Error message if request failed
	Status   binding.String // Status label (e.g., "404 Not Found")
	Bucket   binding.String // format.Bucket of the status code
	Duration binding.String // Request duration (e.g., "123ms")
	Size     binding.String // Response body size (e.g., "1.2 KB")
}

// NewResponseState creates a new ResponseState with initialized bindings.
func NewResponseState() *ResponseState {
	loading := binding.NewBool()
	_ = loading.Set(false) // Default to not loading

	bucket := binding.NewString()
	_ = bucket.Set(string(format.BucketNeutral))

	return &ResponseState{
		TextData: binding.NewString(),
		Loading:  loading,
		Error:    binding.NewString(),
		Status:   binding.NewString(),
		Bucket:   bucket,
		Duration: binding.NewString(),
		Size:     binding.NewString(),
	}
}

// Apply replaces the panel contents with result.
func (r *ResponseState) Apply(result domain.ResponseResult) {
	_ = r.TextData.Set(result.BodyText)
	_ = r.Error.Set(result.ErrorMessage)
	_ = r.Status.Set(format.StatusLabel(result.StatusCode))
	_ = r.Bucket.Set(string(format.Classify(result.StatusCode)))
	_ = r.Duration.Set(FormatDuration(result.Duration))
	if result.Failed() {
		_ = r.Size.Set("")
	} else {
		_ = r.Size.Set(FormatSize(result.Size))
	}
}

// Clear empties the panel before a new submission.
func (r *ResponseState) Clear() {
	_ = r.TextData.Set("")
	_ = r.Error.Set("")
	_ = r.Status.Set("")
	_ = r.Bucket.Set(string(format.BucketNeutral))
	_ = r.Duration.Set("")
	_ = r.Size.Set("")
}

// FormatDuration renders d at millisecond precision ("850ms", "1.24s").
func FormatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return ""
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// FormatSize renders a byte count ("512 B", "1.2 KB", "3.4 MB").
func FormatSize(n int) string {
	const unit = 1024
	switch {
	case n < unit:
		return fmt.Sprintf("%d B", n)
	case n < unit*unit:
		return fmt.Sprintf("%.1f KB", float64(n)/unit)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(unit*unit))
	}
}

// Status bar states.
const (
	StatusIdle    = "idle"
	StatusSending = "sending"
	StatusDone    = "done"
	StatusError   = "error"
)

// StatusUIState represents the UI state for the status bar.
// States: "idle", "sending", "done", "error"
type StatusUIState struct {
	State   binding.String // One of the Status* constants
	Message binding.String // Status message
}

// NewStatusUIState creates a new StatusUIState with initialized bindings.
func NewStatusUIState() *StatusUIState {
	state := binding.NewString()
	_ = state.Set(StatusIdle) // Default to idle

	return &StatusUIState{
		State:   state,
		Message: binding.NewString(),
	}
}

// Set updates both the state and its message.
func (s *StatusUIState) Set(state, message string) {
	_ = s.State.Set(state)
	_ = s.Message.Set(message)
}
