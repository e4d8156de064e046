// Package walletops exposes the wallet operations of the external Vite wallet
// tool: wallet creation, balance and history lookups, transfers and the
// reception of pending transactions.
//
// Every operation validates its parameters before building a command, runs it
// through an opretry.Controller and returns its own opretry.Result, so a
// Service is safe for concurrent use.
package walletops

import (
	"context"
	"time"

	"github.com/gabapcia/vitebridge/internal/nodeexec"
	"github.com/gabapcia/vitebridge/internal/opretry"
	"github.com/gabapcia/vitebridge/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gabapcia/vitebridge/internal/walletops"

// Service is the set of wallet operations backed by the wallet tool.
type Service interface {
	// CreateWallet generates a new seed phrase and its first address.
	// It runs once and is never retried.
	CreateWallet(ctx context.Context) opretry.Result

	// GetBalance returns the balance data of a wallet, including the
	// "balance.blockCount" and "unreceived.blockCount" counters.
	GetBalance(ctx context.Context, ref WalletRef) opretry.Result

	// GetTransactions returns one page of the address' transactions, newest first.
	GetTransactions(ctx context.Context, params TransactionsParams) opretry.Result

	// SendTransaction transfers tokens. A submission that timed out is only
	// repeated when the sender's transaction count shows it did not land.
	SendTransaction(ctx context.Context, params SendParams) opretry.Result

	// GetUpdates receives the wallet's pending transactions. Having nothing
	// to receive is a success.
	GetUpdates(ctx context.Context, params UpdateParams) opretry.Result
}

type service struct {
	tool       nodeexec.Tool
	controller opretry.Controller
	tracer     trace.Tracer

	maxAttempts    int
	sendRetryDelay time.Duration
	txState        retry.Retry
}

// Compile-time assertion that service implements Service.
var _ Service = (*service)(nil)

type config struct {
	maxAttempts     int
	retryDelay      time.Duration
	sendRetryDelay  time.Duration
	txStateAttempts uint
	txStateDelay    time.Duration
}

// Option configures a Service.
type Option func(*config)

// WithMaxAttempts sets the retry budget of every retried operation. Default: 3.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithRetryDelay sets the base backoff delay between retries of read
// operations. Default: 0.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.retryDelay = d
	}
}

// WithSendRetryDelay sets the pause before a transfer is submitted again. Default: 1s.
func WithSendRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.sendRetryDelay = d
	}
}

// WithTxStateAttempts bounds the reads of the sender's transaction count
// used to reconcile a transfer. Default: 10.
func WithTxStateAttempts(n uint) Option {
	return func(c *config) {
		c.txStateAttempts = n
	}
}

// WithTxStateDelay sets the base backoff delay between reads of the sender's
// transaction count. Default: 1s.
func WithTxStateDelay(d time.Duration) Option {
	return func(c *config) {
		c.txStateDelay = d
	}
}

// New creates a Service invoking tool through runner.
func New(tool nodeexec.Tool, runner nodeexec.Runner, opts ...Option) *service {
	cfg := config{
		maxAttempts:     3,
		retryDelay:      0,
		sendRetryDelay:  time.Second,
		txStateAttempts: 10,
		txStateDelay:    time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		tool:           tool,
		controller:     opretry.New(runner, opretry.WithDelay(cfg.retryDelay)),
		tracer:         otel.Tracer(tracerName),
		maxAttempts:    cfg.maxAttempts,
		sendRetryDelay: cfg.sendRetryDelay,
		txState: retry.New(
			retry.WithAttempts(cfg.txStateAttempts),
			retry.WithDelay(cfg.txStateDelay),
		),
	}
}

// start opens the span of an operation.
func (s *service) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "walletops."+operation, trace.WithAttributes(attrs...))
}

// finish records the outcome of an operation on its span and ends it.
func finish(span trace.Span, result opretry.Result) opretry.Result {
	span.SetAttributes(
		attribute.String("operation.status", string(result.Status)),
		attribute.Int("operation.attempts_remaining", result.Remaining),
		attribute.Bool("operation.inferred", result.Inferred),
	)
	if result.Failed {
		span.SetStatus(codes.Error, result.Message)
	}
	span.End()

	return result
}

func (s *service) CreateWallet(ctx context.Context) opretry.Result {
	ctx, span := s.start(ctx, "CreateWallet")

	build := commandFunc(s.tool, nodeexec.SubcommandCreate, nil)
	return finish(span, s.controller.WithRetry(ctx, build, 0, opretry.Never))
}

func (s *service) GetBalance(ctx context.Context, ref WalletRef) opretry.Result {
	ctx, span := s.start(ctx, "GetBalance", attribute.String("wallet.address", ref.Address))

	if err := validate(ref); err != nil {
		return finish(span, opretry.Rejected(err))
	}

	build := commandFunc(s.tool, nodeexec.SubcommandBalance, ref.args())
	return finish(span, s.controller.WithRetry(ctx, build, s.maxAttempts, opretry.Timeout))
}

func (s *service) GetTransactions(ctx context.Context, params TransactionsParams) opretry.Result {
	ctx, span := s.start(ctx, "GetTransactions",
		attribute.String("wallet.address", params.Address),
		attribute.Int("page.index", params.PageIndex),
		attribute.Int("page.size", params.PageSize),
	)

	if err := validate(params); err != nil {
		return finish(span, opretry.Rejected(err))
	}

	build := commandFunc(s.tool, nodeexec.SubcommandTransactions, params.args())
	return finish(span, s.controller.WithRetry(ctx, build, s.maxAttempts, opretry.Timeout))
}

func (s *service) GetUpdates(ctx context.Context, params UpdateParams) opretry.Result {
	ctx, span := s.start(ctx, "GetUpdates", attribute.Int("wallet.index", params.Index))

	if err := validate(params); err != nil {
		return finish(span, opretry.Rejected(err))
	}

	build := commandFunc(s.tool, nodeexec.SubcommandUpdate, params.args())
	return finish(span, s.controller.WithRetry(ctx, build, s.maxAttempts, opretry.Timeout,
		opretry.WithResolver(opretry.NoPending),
	))
}
