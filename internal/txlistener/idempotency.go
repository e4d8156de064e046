package txlistener

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrStillInProgress indicates that the transaction is being delivered by another listener.
	ErrStillInProgress = errors.New("delivery still in progress")

	// ErrAlreadyDelivered indicates that the transaction was handed to the consumer before.
	ErrAlreadyDelivered = errors.New("transaction already delivered")
)

// IdempotencyGuard keeps received transactions from reaching the consumer
// more than once, across ticks and across listener instances sharing the
// same wallets.
type IdempotencyGuard interface {
	// ClaimTransaction reserves the delivery of a transaction received by address.
	//
	// It returns ErrAlreadyDelivered or ErrStillInProgress as control flow
	// signals; any other error is a failure of the guard itself. The claim
	// expires after ttl so a crashed listener does not block delivery forever.
	ClaimTransaction(ctx context.Context, address, hash string, ttl time.Duration) error

	// MarkTransactionDelivered records that the consumer accepted the transaction.
	MarkTransactionDelivered(ctx context.Context, address, hash string) error
}

// nopIdempotencyGuard lets every transaction through and stores nothing.
type nopIdempotencyGuard struct{}

var _ IdempotencyGuard = (*nopIdempotencyGuard)(nil)

func (nopIdempotencyGuard) ClaimTransaction(ctx context.Context, address, hash string, ttl time.Duration) error {
	return nil
}

func (nopIdempotencyGuard) MarkTransactionDelivered(ctx context.Context, address, hash string) error {
	return nil
}
