package pipeline

import (
	"github.com/shhac/postie/internal/domain"
	"github.com/shhac/postie/internal/format"
	"github.com/shhac/postie/internal/httpclient"
)

// Interpret converts a received response into a result. Every status code is
// treated the same way; only presentation tells them apart.
func Interpret(resp *httpclient.Response) domain.ResponseResult {
	status := resp.StatusCode
	result := domain.ResponseResult{
		StatusCode:  &status,
		ContentType: resp.ContentType(),
		Size:        len(resp.Body),
	}

	text := string(resp.Body)
	if pretty, ok := format.PrettyJSON(text); ok {
		result.BodyText = pretty
		return result
	}

	if text == "" {
		text = domain.NoResponseBody
	}
	result.BodyText = text
	return result
}
