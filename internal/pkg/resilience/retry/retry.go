// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// The package implements an exponential backoff strategy, capped by a maximum delay.
// Callers decide which failures are worth another attempt through WithRetryIf; every
// other error stops the loop immediately.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return readTransactionCount()
//	})
//
// With custom options:
//
//	r := retry.New(
//	    retry.WithAttempts(4),
//	    retry.WithDelay(0),
//	    retry.WithRetryIf(isTimeout),
//	)
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs the given function with configured retry logic.
	// It will retry the operation according to the configured parameters
	// if it returns an error accepted by the retry predicate.
	//
	// If the context is canceled, the operation stops retrying and the
	// context error is returned.
	//
	// Execute returns nil if the operation succeeds within the configured
	// number of attempts, or the last error otherwise.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint              // maximum number of attempts, including the first one
	delay    time.Duration     // base delay between retry attempts
	maxDelay time.Duration     // maximum delay between retry attempts
	retryIf  func(error) bool // decides whether an error deserves another attempt
}

// Option defines a functional option for configuring the retry mechanism.
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options. If no options are given, default values are used.
//
// Default configuration:
//   - attempts: 3 (1 initial attempt + 2 retries)
//   - delay:    1 second (base delay, will increase with exponential backoff)
//   - maxDelay: 5 seconds (maximum delay between retries)
//   - retryIf:  every non-nil error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
		retryIf:  func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements the Retry interface.
//
// The operation is first attempted immediately. If it fails with a retriable
// error, it is retried with exponential backoff delays between attempts, up to
// the configured number of attempts. Attempts is always at least 1: retry-go
// treats zero as "retry forever", which this package never asks for.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(max(r.cfg.attempts, 1)),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(r.cfg.retryIf),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Default: 3 (1 initial attempt + 2 retries).
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between retry attempts.
// With exponential backoff, subsequent delays will increase.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay sets the maximum delay between retry attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithRetryIf sets the predicate that decides whether a failed attempt is
// retried. Errors rejected by the predicate are returned immediately.
// Default: retry every error.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
