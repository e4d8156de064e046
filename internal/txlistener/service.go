// Package txlistener polls a set of wallets in the background, receives their
// pending transactions and hands the incoming ones to a Consumer.
package txlistener

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/vitebridge/internal/opretry"
	"github.com/gabapcia/vitebridge/internal/pkg/logger"
	"github.com/gabapcia/vitebridge/internal/pkg/types"
	"github.com/gabapcia/vitebridge/internal/pkg/validator"
	"github.com/gabapcia/vitebridge/internal/pkg/x/chflow"
	"github.com/gabapcia/vitebridge/internal/walletops"
)

const (
	// DefaultPollInterval is used when Config.PollInterval is zero.
	DefaultPollInterval = 10 * time.Second

	defaultClaimTTL = 5 * time.Minute
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrInvalidConfig         = errors.New("invalid listener config")
)

// WalletOperations is the subset of walletops.Service the listener relies on.
type WalletOperations interface {
	GetBalance(ctx context.Context, ref walletops.WalletRef) opretry.Result
	GetUpdates(ctx context.Context, params walletops.UpdateParams) opretry.Result
	GetTransactions(ctx context.Context, params walletops.TransactionsParams) opretry.Result
}

// Wallet is a watched wallet. The address is used for lookups and the seed
// phrase to receive pending transactions.
type Wallet struct {
	Address  string `validate:"required"`
	Mnemonic string `validate:"required"`
	Index    int    `validate:"gte=0"`
}

// Config describes one listener run.
type Config struct {
	// Wallets are visited in order on every tick.
	Wallets []Wallet `validate:"required,min=1,dive"`

	// TokenFilters are matched case-insensitively against token symbols.
	// AllTokens matches every token.
	TokenFilters []string `validate:"required,min=1,dive,required"`

	// PollInterval is the pause between ticks. Zero means DefaultPollInterval.
	PollInterval time.Duration `validate:"gte=0"`

	Consumer Consumer `validate:"required"`

	// SkipEmpty avoids calling the consumer when a wallet had pending
	// transactions but none passed the filters.
	SkipEmpty bool
}

// Service runs at most one listener at a time.
type Service interface {
	// Start validates cfg and launches the polling goroutine. The first tick
	// runs immediately.
	Start(ctx context.Context, cfg Config) error

	// Stop cancels the listener and waits for its goroutine to exit. A wallet
	// operation or consumer call already in flight completes first; no
	// consumer call happens once Stop returns. Transactions still waiting for
	// redelivery are dropped; their claims expire after the claim TTL. Stop
	// must not be called from the consumer.
	Stop()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	wallets          WalletOperations
	idempotencyGuard IdempotencyGuard
	claimTTL         time.Duration
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context, cfg Config) error {
	if err := validator.Validate(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	s.closeFunc = func() {
		cancel()
		<-done
	}

	go func() {
		defer close(done)
		s.run(ctx, cfg)
	}()

	logger.Info(ctx, "transaction listener started",
		"listener.wallets", len(cfg.Wallets),
		"listener.tokens", cfg.TokenFilters,
	)

	s.isStarted = true
	return nil
}

func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}
	s.isStarted = false
	s.closeFunc = nil
}

type config struct {
	idempotencyGuard IdempotencyGuard
	claimTTL         time.Duration
}

type Option func(*config)

func New(wallets WalletOperations, opts ...Option) *service {
	cfg := config{
		idempotencyGuard: nopIdempotencyGuard{},
		claimTTL:         defaultClaimTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		wallets:          wallets,
		idempotencyGuard: cfg.idempotencyGuard,
		claimTTL:         cfg.claimTTL,
	}
}

func WithIdempotencyGuard(g IdempotencyGuard) Option {
	return func(c *config) {
		c.idempotencyGuard = g
	}
}

// WithClaimTTL sets how long a delivery claim blocks other listeners. Default: 5m.
func WithClaimTTL(d time.Duration) Option {
	return func(c *config) {
		c.claimTTL = d
	}
}

func (s *service) run(ctx context.Context, cfg Config) {
	interval := cfg.PollInterval
	if interval == 0 {
		interval = DefaultPollInterval
	}

	filter := newTokenFilter(cfg.TokenFilters)

	// Claimed transactions whose delivery failed, by wallet address. They are
	// offered again on the next tick since the wallet no longer reports them
	// as pending.
	undelivered := make(map[string][]Transaction)

	for {
		for _, wallet := range cfg.Wallets {
			if ctx.Err() != nil {
				return
			}

			backlog := s.processWallet(ctx, cfg, filter, wallet, undelivered[wallet.Address])
			if len(backlog) == 0 {
				delete(undelivered, wallet.Address)
			} else {
				undelivered[wallet.Address] = backlog
			}
		}

		if !chflow.Sleep(ctx, interval) {
			logger.Info(ctx, "transaction listener stopped")
			return
		}
	}
}

// processWallet runs one tick for a wallet and returns the transactions left
// undelivered. backlog holds the ones a previous tick failed to deliver; they
// are delivered first. Failures are logged and never leave this function.
func (s *service) processWallet(ctx context.Context, cfg Config, filter tokenFilter, wallet Wallet, backlog []Transaction) []Transaction {
	// Operations outlive Stop so a subprocess in flight is never killed halfway.
	ctx = context.WithoutCancel(ctx)

	balance := s.wallets.GetBalance(ctx, walletops.WalletRef{Address: wallet.Address})
	if balance.Failed {
		logger.Warn(ctx, "could not read wallet balance",
			"wallet.address", wallet.Address,
			"response.message", balance.Message,
		)
		return backlog
	}

	pending, ok := walletops.PendingCount(balance.Data)
	if !ok {
		logger.Warn(ctx, "balance has no pending transaction count", "wallet.address", wallet.Address)
		return backlog
	}

	logger.Debug(ctx, "wallet polled",
		"wallet.address", wallet.Address,
		"wallet.pending", pending,
		"wallet.undelivered", len(backlog),
	)

	var received []Transaction
	if pending > 0 {
		var fetched bool
		if received, fetched = s.receive(ctx, filter, wallet, pending); !fetched {
			return backlog
		}
	} else if len(backlog) == 0 {
		return nil
	}

	txs := mergeBacklog(backlog, received)
	if len(txs) == 0 && cfg.SkipEmpty {
		return nil
	}

	if err := cfg.Consumer.Consume(ctx, wallet, txs); err != nil {
		logger.Error(ctx, "transaction consumer failed",
			"wallet.address", wallet.Address,
			"transactions", len(txs),
			"error", err,
		)
		return txs
	}

	s.markDelivered(ctx, wallet, txs)
	return nil
}

// receive materializes the wallet's pending transactions and returns the
// claimed incoming ones that pass the filter. fetched is false when any
// wallet operation failed.
func (s *service) receive(ctx context.Context, filter tokenFilter, wallet Wallet, pending int64) (txs []Transaction, fetched bool) {
	update := s.wallets.GetUpdates(ctx, walletops.UpdateParams{Mnemonic: wallet.Mnemonic, Index: wallet.Index})
	if update.Failed {
		logger.Warn(ctx, "could not receive pending transactions",
			"wallet.address", wallet.Address,
			"response.message", update.Message,
		)
		return nil, false
	}

	history := s.wallets.GetTransactions(ctx, walletops.TransactionsParams{
		Address:  wallet.Address,
		PageSize: int(pending) + 1,
	})
	if history.Failed {
		logger.Warn(ctx, "could not read wallet transactions",
			"wallet.address", wallet.Address,
			"response.message", history.Message,
		)
		return nil, false
	}

	entries, ok := history.Data.([]any)
	if !ok {
		logger.Warn(ctx, "wallet transactions are not a list", "wallet.address", wallet.Address)
		return nil, false
	}

	return s.claim(ctx, wallet, filter.received(entries)), true
}

// mergeBacklog appends the received transactions to the backlog, skipping
// hashes the backlog already holds.
func mergeBacklog(backlog, received []Transaction) []Transaction {
	if len(backlog) == 0 {
		return received
	}

	seen := types.NewSet[string]()
	for _, tx := range backlog {
		if hash := tx.Hash(); hash != "" {
			seen.Add(hash)
		}
	}

	merged := slices.Clone(backlog)
	for _, tx := range received {
		if hash := tx.Hash(); hash != "" && seen.Has(hash) {
			continue
		}
		merged = append(merged, tx)
	}
	return merged
}

// claim drops the transactions another delivery already took care of.
// Transactions are kept when the guard itself fails.
func (s *service) claim(ctx context.Context, wallet Wallet, txs []Transaction) []Transaction {
	claimed := txs[:0]
	for _, tx := range txs {
		hash := tx.Hash()
		if hash == "" {
			claimed = append(claimed, tx)
			continue
		}

		err := s.idempotencyGuard.ClaimTransaction(ctx, wallet.Address, hash, s.claimTTL)
		switch {
		case errors.Is(err, ErrAlreadyDelivered), errors.Is(err, ErrStillInProgress):
			logger.Debug(ctx, "transaction skipped", "wallet.address", wallet.Address, "tx.hash", hash, "reason", err)
			continue
		case err != nil:
			logger.Warn(ctx, "idempotency guard failed", "wallet.address", wallet.Address, "tx.hash", hash, "error", err)
		}

		claimed = append(claimed, tx)
	}
	return claimed
}

func (s *service) markDelivered(ctx context.Context, wallet Wallet, txs []Transaction) {
	for _, tx := range txs {
		hash := tx.Hash()
		if hash == "" {
			continue
		}

		if err := s.idempotencyGuard.MarkTransactionDelivered(ctx, wallet.Address, hash); err != nil {
			logger.Warn(ctx, "could not mark transaction as delivered",
				"wallet.address", wallet.Address,
				"tx.hash", hash,
				"error", err,
			)
		}
	}
}
