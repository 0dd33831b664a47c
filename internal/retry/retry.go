// Package retry runs idempotent operations with bounded linear backoff.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/safety-audits/internal/domain"
)

// Policy controls how many times an operation is attempted and how long to
// wait between attempts. The wait before attempt n+1 is BaseDelay * n.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Retryable reports whether a failed attempt may be repeated.
	// nil means every error is retryable.
	Retryable func(error) bool

	// timer is swapped in tests; nil uses a real time.Timer.
	timer backoff.Timer
	// notify observes each scheduled retry.
	notify backoff.Notify
}

// DefaultPolicy returns 3 attempts, 1s base delay, retrying transient errors only.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Retryable:   domain.IsTransient,
	}
}

// Always retries on any error.
func Always(error) bool { return true }

// WithNotify returns a copy of p that calls fn before every wait.
func (p Policy) WithNotify(fn func(err error, wait time.Duration)) Policy {
	p.notify = fn
	return p
}

// Do calls fn until it succeeds, returns a non-retryable error, or the
// attempts are used up. The last error is returned unchanged.
// A cancelled ctx stops the wait and returns ctx.Err().
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T

	op := func() error {
		v, err := fn(ctx)
		if err != nil {
			if p.Retryable != nil && !p.Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = v
		return nil
	}

	b := backoff.WithContext(&linear{base: p.BaseDelay, max: p.MaxAttempts}, ctx)
	if err := backoff.RetryNotifyWithTimer(op, b, p.notify, p.timer); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// linear is a backoff.BackOff yielding base, 2*base, ... and stopping once
// max attempts have been made.
type linear struct {
	base time.Duration
	max  int
	n    int
}

func (l *linear) NextBackOff() time.Duration {
	l.n++
	if l.n >= l.max {
		return backoff.Stop
	}
	return l.base * time.Duration(l.n)
}

func (l *linear) Reset() { l.n = 0 }
