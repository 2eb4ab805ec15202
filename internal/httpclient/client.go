package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// AcceptEncoding lists the content codings the client can decode.
const AcceptEncoding = "gzip, br, zstd"

// Doer is the subset of *http.Client the client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Sender issues one prepared request and returns the fully read response.
type Sender interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Request is a prepared HTTP request. A nil Body sends no body at all.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// HasBody reports whether a body will be attached.
func (r *Request) HasBody() bool {
	return r.Body != nil
}

// Response is an HTTP response with its body already read and decoded.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// ContentType returns the response Content-Type header.
func (r *Response) ContentType() string {
	return r.Headers.Get("Content-Type")
}

// Client sends requests over net/http.
type Client struct {
	doer   Doer
	logger *slog.Logger
}

// New creates a client backed by a fresh *http.Client. A zero timeout
// leaves requests unbounded.
func New(timeout time.Duration, logger *slog.Logger) *Client {
	return NewWithDoer(&http.Client{Timeout: timeout}, logger)
}

// NewWithDoer creates a client that sends through doer.
func NewWithDoer(doer Doer, logger *slog.Logger) *Client {
	return &Client{
		doer:   doer,
		logger: logger,
	}
}

// Send issues req and reads the whole response body, undoing any
// Content-Encoding and converting declared non-UTF-8 charsets.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	var bodyReader io.Reader
	if req.HasBody() {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("Accept-Encoding", AcceptEncoding)

	c.logger.Debug("sending http request",
		slog.String("method", req.Method),
		slog.String("url", req.URL),
		slog.Bool("has_body", req.HasBody()),
	)

	start := time.Now()
	resp, err := c.doer.Do(httpReq)
	if err != nil {
		c.logger.Warn("http request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL),
			slog.Any("error", err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	body, err := decodeBody(raw, resp.Header)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("http response received",
		slog.String("method", req.Method),
		slog.String("url", req.URL),
		slog.Int("status", resp.StatusCode),
		slog.Int("size", len(body)),
		slog.Duration("duration", time.Since(start)),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}
