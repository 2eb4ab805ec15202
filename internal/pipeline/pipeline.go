// Package pipeline builds, sends and interprets one HTTP request per
// submission.
package pipeline

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/shhac/postie/internal/domain"
	apperrors "github.com/shhac/postie/internal/errors"
	"github.com/shhac/postie/internal/httpclient"
)

// Runner executes a single submission.
type Runner interface {
	Send(ctx context.Context, cfg domain.RequestConfig) (domain.ResponseResult, error)
}

// Pipeline runs URL building, preparation, transport and interpretation in order.
type Pipeline struct {
	sender  httpclient.Sender
	logger  *slog.Logger
	timeout atomic.Int64
}

// New creates a pipeline that sends through sender.
func New(sender httpclient.Sender, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		sender: sender,
		logger: logger,
	}
}

// SetTimeout bounds every later submission by d. Zero or negative means no
// timeout.
func (p *Pipeline) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	p.timeout.Store(int64(d))
}

// Timeout returns the current per-request timeout.
func (p *Pipeline) Timeout() time.Duration {
	return time.Duration(p.timeout.Load())
}

// Send runs one submission. On failure the returned result carries the
// user-visible message in ErrorMessage and a nil StatusCode, and the error
// matches apperrors.ErrInvalidRequestBody or apperrors.ErrRequestFailed.
// Non-2xx responses are not errors.
func (p *Pipeline) Send(ctx context.Context, cfg domain.RequestConfig) (domain.ResponseResult, error) {
	logger := p.logger.With(slog.String("submission_id", uuid.NewString()))
	start := time.Now()

	req, err := Prepare(cfg)
	if err != nil {
		logger.Info("request not sent", slog.Any("error", err))
		return failure(err, 0), err
	}

	logger.Info("sending request",
		slog.String("method", req.Method),
		slog.String("url", req.URL),
		slog.Bool("auth", req.Headers[headerAuthorization] != ""),
	)

	if timeout := p.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := p.sender.Send(ctx, req)
	if err != nil {
		reqErr := apperrors.RequestFailed(err)
		elapsed := time.Since(start)
		logger.Warn("request failed",
			slog.String("url", req.URL),
			slog.Any("error", err),
			slog.Duration("duration", elapsed),
		)
		return failure(reqErr, elapsed), reqErr
	}

	result := Interpret(resp)
	result.Duration = time.Since(start)

	logger.Info("response received",
		slog.Int("status", resp.StatusCode),
		slog.Int("size", result.Size),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

func failure(err error, elapsed time.Duration) domain.ResponseResult {
	return domain.ResponseResult{
		ErrorMessage: err.Error(),
		Duration:     elapsed,
	}
}
