package mailer

import (
	"context"
	"time"

	"planetary-api/internal/worker"

	"go.uber.org/zap"
)

// Async hands messages to a worker pool and returns immediately.
// Delivery failures are logged, not reported to the caller.
type Async struct {
	next    Mailer
	pool    worker.Pool
	log     *zap.Logger
	timeout time.Duration
}

// NewAsync wraps next so that every Send runs on pool.
func NewAsync(next Mailer, pool worker.Pool, log *zap.Logger, timeout time.Duration) *Async {
	return &Async{next: next, pool: pool, log: log, timeout: timeout}
}

func (a *Async) Send(ctx context.Context, to, subject, body string) error {
	// the request context is cancelled once the handler returns
	base := context.WithoutCancel(ctx)
	a.pool.Submit(func() {
		sendCtx := base
		if a.timeout > 0 {
			var cancel context.CancelFunc
			sendCtx, cancel = context.WithTimeout(base, a.timeout)
			defer cancel()
		}
		if err := a.next.Send(sendCtx, to, subject, body); err != nil {
			a.log.Error("async mail delivery failed", zap.String("to", to), zap.Error(err))
			return
		}
		a.log.Debug("async mail delivered", zap.String("to", to))
	})
	return nil
}
