package pipeline

import (
	"context"
	"sync/atomic"

	"github.com/shhac/postie/internal/domain"
	apperrors "github.com/shhac/postie/internal/errors"
)

// Submitter allows one submission in flight at a time. There is no queue:
// a call made while another is running fails with apperrors.ErrBusy.
type Submitter struct {
	runner Runner
	busy   atomic.Bool
}

// NewSubmitter wraps runner with a busy guard.
func NewSubmitter(runner Runner) *Submitter {
	return &Submitter{runner: runner}
}

// Submit runs cfg unless another submission is still in flight.
func (s *Submitter) Submit(ctx context.Context, cfg domain.RequestConfig) (domain.ResponseResult, error) {
	release, err := s.Begin()
	if err != nil {
		return domain.ResponseResult{}, err
	}
	defer release()

	return s.runner.Send(ctx, cfg)
}

// Begin takes the busy flag for a caller that runs the submission itself.
// It fails with apperrors.ErrBusy while another submission holds the flag.
// release must be called exactly once.
func (s *Submitter) Begin() (release func(), err error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, apperrors.ErrBusy
	}
	return func() { s.busy.Store(false) }, nil
}

// Run sends cfg without touching the busy flag. Callers hold it via Begin.
func (s *Submitter) Run(ctx context.Context, cfg domain.RequestConfig) (domain.ResponseResult, error) {
	return s.runner.Send(ctx, cfg)
}

// Busy reports whether a submission is in flight.
func (s *Submitter) Busy() bool {
	return s.busy.Load()
}
