package pipeline

import (
	"encoding/json"

	"github.com/shhac/postie/internal/domain"
	apperrors "github.com/shhac/postie/internal/errors"
	"github.com/shhac/postie/internal/httpclient"
)

const (
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"
	contentTypeJSON     = "application/json"
)

// Prepare turns a form snapshot into a wire request.
//
// Auth enabled with an empty token adds no Authorization header and is not
// an error. GET never carries a body. A POST or PUT body must be valid JSON
// and is attached byte for byte.
func Prepare(cfg domain.RequestConfig) (*httpclient.Request, error) {
	req := &httpclient.Request{
		Method: string(cfg.Method),
		URL:    BuildURL(cfg.BaseURL, cfg.Path, cfg.QueryString),
		Headers: map[string]string{
			headerContentType: contentTypeJSON,
		},
	}

	if cfg.UseAuth && cfg.Token != "" {
		req.Headers[headerAuthorization] = "Bearer " + cfg.Token
	}

	if !cfg.Method.AllowsBody() || cfg.JSONBody == "" {
		return req, nil
	}

	if err := validateJSON(cfg.JSONBody); err != nil {
		return nil, apperrors.InvalidBody(err)
	}
	req.Body = []byte(cfg.JSONBody)

	return req, nil
}

// validateJSON returns the decoder's syntax error for invalid input.
// json.Valid only reports a bool, so decode into a RawMessage to get the
// message the user sees.
func validateJSON(text string) error {
	var raw json.RawMessage
	return json.Unmarshal([]byte(text), &raw)
}
