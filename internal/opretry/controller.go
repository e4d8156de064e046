package opretry

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/vitebridge/internal/nodeexec"
	"github.com/gabapcia/vitebridge/internal/pkg/logger"
	"github.com/gabapcia/vitebridge/internal/pkg/resilience/retry"
)

var (
	errRetriable = errors.New("retriable failure")
	errTerminal  = errors.New("terminal failure")
	errSettled   = errors.New("settled remotely")
)

// Decision is the outcome of reconciling remote state after a retriable failure.
type Decision int

const (
	// Resubmit runs the command again.
	Resubmit Decision = iota
	// Settle stops and returns the last response, marking the Result as Inferred.
	Settle
	// Abort stops and returns the response produced by the Reconciler.
	Abort
)

// Reconciler runs after a retriable failure, once the budget was charged and
// before the command is submitted again.
type Reconciler func(ctx context.Context, last nodeexec.Response) (Decision, nodeexec.Response)

// Controller runs commands through a nodeexec.Runner with bounded retry.
type Controller interface {
	// WithRetry invokes the command produced by build until it succeeds, a
	// failure is classified Terminal, or the budget of maxAttempts retries is
	// spent. With a budget of N the command runs at most N+1 times.
	WithRetry(ctx context.Context, build func() nodeexec.Command, maxAttempts int, classify Classifier, opts ...CallOption) Result
}

type controller struct {
	runner   nodeexec.Runner
	delay    time.Duration
	maxDelay time.Duration
}

// Compile-time assertion that controller implements Controller.
var _ Controller = (*controller)(nil)

type config struct {
	delay    time.Duration
	maxDelay time.Duration
}

// Option configures a Controller.
type Option func(*config)

// WithDelay sets the base delay between attempts. Delays grow exponentially.
// Default: 0.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts. Zero means no cap. Default: 5s.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// New creates a Controller executing commands with runner.
func New(runner nodeexec.Runner, opts ...Option) *controller {
	cfg := config{
		delay:    0,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &controller{
		runner:   runner,
		delay:    cfg.delay,
		maxDelay: cfg.maxDelay,
	}
}

type callConfig struct {
	delay      time.Duration
	maxDelay   time.Duration
	resolver   Resolver
	reconciler Reconciler
}

// CallOption customizes a single WithRetry call.
type CallOption func(*callConfig)

// WithResolver lets r turn a failed response into a final success.
func WithResolver(r Resolver) CallOption {
	return func(c *callConfig) {
		c.resolver = r
	}
}

// WithReconciler checks remote state with r before every resubmission.
func WithReconciler(r Reconciler) CallOption {
	return func(c *callConfig) {
		c.reconciler = r
	}
}

// WithFixedDelay waits exactly d between the attempts of this call.
func WithFixedDelay(d time.Duration) CallOption {
	return func(c *callConfig) {
		c.delay = d
		c.maxDelay = d
	}
}

func (c *controller) WithRetry(ctx context.Context, build func() nodeexec.Command, maxAttempts int, classify Classifier, opts ...CallOption) Result {
	cfg := callConfig{
		delay:    c.delay,
		maxDelay: c.maxDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if classify == nil {
		classify = Never
	}

	var (
		remaining  = max(maxAttempts, 0)
		last       nodeexec.Response
		subcommand string
	)

	r := retry.New(
		retry.WithAttempts(uint(remaining)+1),
		retry.WithDelay(cfg.delay),
		retry.WithMaxDelay(cfg.maxDelay),
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, errRetriable) }),
	)

	err := r.Execute(ctx, func() error {
		cmd := build()
		subcommand = cmd.Subcommand()

		last = c.runner.Execute(ctx, cmd)
		if !last.Failed {
			return nil
		}

		if cfg.resolver != nil {
			if resolved, ok := cfg.resolver(last); ok {
				last = resolved
				return nil
			}
		}

		if classify(last) == Terminal {
			return errTerminal
		}

		// The final attempt was the last one the budget allowed.
		if remaining == 0 {
			return errRetriable
		}
		remaining--

		logger.Warn(ctx, "wallet tool call failed",
			"invocation.command", subcommand,
			"response.message", last.Message,
			"attempts.remaining", remaining,
		)

		if cfg.reconciler == nil {
			return errRetriable
		}

		switch decision, resp := cfg.reconciler(ctx, last); decision {
		case Settle:
			return errSettled
		case Abort:
			last = resp
			return errTerminal
		default:
			return errRetriable
		}
	})

	result := Result{Response: last, Status: StatusRunning, Remaining: remaining}

	switch {
	case err == nil:
		result.Status = StatusFinished
		return result
	case errors.Is(err, errSettled):
		result.Status = StatusFinished
		result.Inferred = true
		logger.Warn(ctx, "wallet tool call failed but took effect remotely",
			"invocation.command", subcommand,
			"response.message", last.Message,
		)
		return result
	case errors.Is(err, errRetriable):
		result.Response = nodeexec.Failure(MsgExhausted)
	case errors.Is(err, errTerminal):
	default:
		result.Response = nodeexec.Failure(err.Error())
	}

	result.Status = StatusFailed
	logger.Error(ctx, "wallet tool call failed",
		"invocation.command", subcommand,
		"response.message", result.Message,
		"attempts.remaining", result.Remaining,
	)

	return result
}
