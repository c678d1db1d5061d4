package repo

import (
	"context"
	"time"

	"narrativedesk/internal/core/posts"
	perr "narrativedesk/internal/platform/errors"
	"narrativedesk/internal/platform/logger"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

// backoff bounds between fetch attempts; tests shrink them
var (
	retryBackoffStart   = 200 * time.Millisecond
	retryBackoffCeiling = 3 * time.Second
)

// RetryOption tunes WithRetry
type RetryOption func(*retryCfg)

type retryCfg struct {
	log          *logger.Logger
	breakerAfter uint
	breakerDelay time.Duration
}

// WithRetryLogger logs each retry on log
func WithRetryLogger(log *logger.Logger) RetryOption {
	return func(c *retryCfg) { c.log = log }
}

// WithBreaker opens a circuit after failures consecutive failed fetches and
// rejects fetches for delay before probing again. failures 0 disables it
func WithBreaker(failures uint, delay time.Duration) RetryOption {
	return func(c *retryCfg) {
		c.breakerAfter = failures
		c.breakerDelay = delay
	}
}

type retrying struct {
	next    Fetcher
	timeout time.Duration
	exec    failsafe.Executor[[]posts.RawRow]
}

// WithRetry wraps f so transient failures are retried up to retries times.
// Each attempt gets its own timeout; timeout 0 leaves the attempt unbounded
func WithRetry(f Fetcher, retries int, timeout time.Duration, opts ...RetryOption) Fetcher {
	c := retryCfg{log: logger.Nop()}
	for _, o := range opts {
		o(&c)
	}
	if retries < 0 {
		retries = 0
	}

	var policies []failsafe.Policy[[]posts.RawRow]
	policies = append(policies, retrypolicy.NewBuilder[[]posts.RawRow]().
		WithBackoff(retryBackoffStart, retryBackoffCeiling).
		WithJitterFactor(0.1).
		WithMaxRetries(retries).
		HandleIf(func(_ []posts.RawRow, err error) bool { return perr.Retryable(err) }).
		OnRetry(func(e failsafe.ExecutionEvent[[]posts.RawRow]) {
			c.log.Warn().Int("attempt", e.Attempts()).Err(e.LastError()).Msg("fetch failed; retrying")
		}).
		ReturnLastFailure().
		Build())

	if c.breakerAfter > 0 {
		delay := c.breakerDelay
		if delay <= 0 {
			delay = 30 * time.Second
		}
		policies = append(policies, circuitbreaker.NewBuilder[[]posts.RawRow]().
			HandleIf(func(_ []posts.RawRow, err error) bool { return perr.Retryable(err) }).
			WithFailureThreshold(c.breakerAfter).
			WithDelay(delay).
			OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
				c.log.Warn().Str("from", stateName(e.OldState)).Str("to", stateName(e.NewState)).Msg("fetch circuit changed state")
			}).
			Build())
	}

	return &retrying{
		next:    f,
		timeout: timeout,
		exec:    failsafe.With(policies...),
	}
}

func (r *retrying) FetchRawRows(ctx context.Context, source string) ([]posts.RawRow, error) {
	rows, err := r.exec.WithContext(ctx).Get(func() ([]posts.RawRow, error) {
		actx := ctx
		if r.timeout > 0 {
			var cancel context.CancelFunc
			actx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}
		return r.next.FetchRawRows(actx, source)
	})
	if err != nil && perr.CodeOf(err) == perr.ErrorCodeUnknown {
		// breaker rejections and exhausted contexts arrive uncoded
		code := perr.UpstreamCode(err)
		if code == perr.ErrorCodeUnknown {
			code = perr.ErrorCodeUnavailable
		}
		return nil, perr.Wrap(err, code, "fetch "+source)
	}
	return rows, err
}

func stateName(s circuitbreaker.State) string {
	switch s {
	case circuitbreaker.OpenState:
		return "open"
	case circuitbreaker.HalfOpenState:
		return "half-open"
	default:
		return "closed"
	}
}
