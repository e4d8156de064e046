package walletops

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/vitebridge/internal/nodeexec"
	"github.com/gabapcia/vitebridge/internal/nodeexec/literal"
	"github.com/gabapcia/vitebridge/internal/opretry"
	"github.com/gabapcia/vitebridge/internal/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrTxStateUnavailable is returned when the sender's transaction count
	// cannot be read, so whether a transfer landed cannot be told.
	ErrTxStateUnavailable = errors.New("transaction state unavailable")

	// errNoTxCount is returned when balance data lacks a usable transaction count.
	errNoTxCount = errors.New("balance data has no transaction count")
)

// TxCount extracts the confirmed transaction count ("balance.blockCount")
// from balance data.
func TxCount(data any) (int64, bool) {
	v, ok := literal.Lookup(data, "balance", "blockCount")
	if !ok {
		return 0, false
	}
	return literal.Int(v)
}

// PendingCount extracts the number of pending incoming transactions
// ("unreceived.blockCount") from balance data.
func PendingCount(data any) (int64, bool) {
	v, ok := literal.Lookup(data, "unreceived", "blockCount")
	if !ok {
		return 0, false
	}
	return literal.Int(v)
}

// readTxCount reads the wallet's transaction count, retrying with backoff
// until a count is obtained or the attempts run out.
func (s *service) readTxCount(ctx context.Context, ref WalletRef) (int64, error) {
	var count int64

	err := s.txState.Execute(ctx, func() error {
		result := s.GetBalance(ctx, ref)
		if result.Failed {
			logger.Warn(ctx, "could not read wallet transaction count", "response.message", result.Message)
			return errors.New(result.Message)
		}

		n, ok := TxCount(result.Data)
		if !ok {
			logger.Warn(ctx, "could not read wallet transaction count", "error", errNoTxCount)
			return errNoTxCount
		}

		count = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTxStateUnavailable, err)
	}

	return count, nil
}

func (s *service) SendTransaction(ctx context.Context, params SendParams) opretry.Result {
	ctx, span := s.start(ctx, "SendTransaction",
		attribute.String("transfer.to", params.ToAddress),
		attribute.String("transfer.token_id", params.TokenID),
		attribute.String("transfer.amount", params.Amount.String()),
	)

	if err := validate(params); err != nil {
		return finish(span, opretry.Rejected(err))
	}

	sender := params.sender()

	before, err := s.readTxCount(ctx, sender)
	if err != nil {
		return finish(span, opretry.Rejected(err))
	}

	reconcile := func(ctx context.Context, last nodeexec.Response) (opretry.Decision, nodeexec.Response) {
		current, err := s.readTxCount(ctx, sender)
		if err != nil {
			return opretry.Abort, nodeexec.Failure(err.Error())
		}

		if current != before {
			logger.Info(ctx, "transfer landed despite the failed submission",
				"tx.count.before", before,
				"tx.count.current", current,
			)
			return opretry.Settle, last
		}

		return opretry.Resubmit, last
	}

	build := commandFunc(s.tool, nodeexec.SubcommandSend, params.args())
	return finish(span, s.controller.WithRetry(ctx, build, s.maxAttempts, opretry.Timeout,
		opretry.WithReconciler(reconcile),
		opretry.WithFixedDelay(s.sendRetryDelay),
	))
}
