package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/vitebridge/internal/txlistener"

	"github.com/redis/go-redis/v9"
)

const (
	// txlistenerKeyPrefix namespaces the delivery entries of the transaction listener.
	txlistenerKeyPrefix = "txlistener"

	// txlistenerDelivered is the terminal value of a delivered transaction.
	txlistenerDelivered = "delivered"
)

func txlistenerDeliveryKey(address, hash string) string {
	return fmt.Sprintf("%s:delivery:%s:%s", txlistenerKeyPrefix, address, hash)
}

// ClaimTransaction reserves the delivery of a received transaction.
//
// Behavior:
//   - If the key holds "delivered", it returns txlistener.ErrAlreadyDelivered.
//   - If the key exists with any other value, it returns txlistener.ErrStillInProgress.
//   - Otherwise it stores an empty value with ttl to hold the claim.
func (c *client) ClaimTransaction(ctx context.Context, address, hash string, ttl time.Duration) error {
	key := txlistenerDeliveryKey(address, hash)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	if val == txlistenerDelivered {
		return txlistener.ErrAlreadyDelivered
	}

	ok, err := c.conn.SetNX(ctx, key, "", ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return txlistener.ErrStillInProgress
	}

	return nil
}

// MarkTransactionDelivered stores the terminal "delivered" value without expiration.
func (c *client) MarkTransactionDelivered(ctx context.Context, address, hash string) error {
	key := txlistenerDeliveryKey(address, hash)
	return c.conn.Set(ctx, key, txlistenerDelivered, 0).Err()
}

var _ txlistener.IdempotencyGuard = new(client)
