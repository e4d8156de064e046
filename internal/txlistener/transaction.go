package txlistener

import (
	"context"
	"strings"

	"github.com/gabapcia/vitebridge/internal/nodeexec/literal"
	"github.com/gabapcia/vitebridge/internal/pkg/types"
)

const (
	// AllTokens is the token filter matching every token.
	AllTokens = "__all__"

	// blockTypeReceive is the account block type of an incoming transaction.
	blockTypeReceive = 4
)

// Transaction is one entry of a wallet's history as printed by the wallet tool.
type Transaction map[string]any

// Hash returns the transaction hash, or "" when the entry has none.
func (t Transaction) Hash() string {
	v, _ := literal.Lookup(map[string]any(t), "hash")
	hash, _ := literal.String(v)
	return hash
}

// BlockType returns the account block type of the transaction.
func (t Transaction) BlockType() (int64, bool) {
	v, ok := literal.Lookup(map[string]any(t), "blockType")
	if !ok {
		return 0, false
	}
	return literal.Int(v)
}

// TokenSymbol returns the symbol of the transferred token.
func (t Transaction) TokenSymbol() string {
	v, _ := literal.Lookup(map[string]any(t), "tokenInfo", "tokenSymbol")
	symbol, _ := literal.String(v)
	return symbol
}

// Consumer receives the incoming transactions found for a wallet on a tick.
//
// Consume is called synchronously from the listener goroutine. On error the
// transactions stay claimed and are passed again, ahead of newer ones, on the
// following ticks until a call succeeds or the listener stops.
type Consumer interface {
	Consume(ctx context.Context, wallet Wallet, txs []Transaction) error
}

// ConsumerFunc adapts a function to the Consumer interface.
type ConsumerFunc func(ctx context.Context, wallet Wallet, txs []Transaction) error

// Consume calls f(ctx, wallet, txs).
func (f ConsumerFunc) Consume(ctx context.Context, wallet Wallet, txs []Transaction) error {
	return f(ctx, wallet, txs)
}

// tokenFilter matches token symbols case-insensitively by substring.
type tokenFilter struct {
	needles types.Set[string]
}

func newTokenFilter(tokens []string) tokenFilter {
	f := tokenFilter{needles: types.NewSet[string]()}
	for _, token := range tokens {
		if token != AllTokens {
			token = strings.ToLower(token)
		}
		f.needles.Add(token)
	}
	return f
}

func (f tokenFilter) match(symbol string) bool {
	if f.needles.Has(AllTokens) {
		return true
	}

	symbol = strings.ToLower(symbol)
	for needle := range f.needles.ToIter() {
		if strings.Contains(symbol, needle) {
			return true
		}
	}
	return false
}

// received keeps the incoming transactions of entries whose token matches
// the filter, preserving their order. Entries that are not mappings are skipped.
func (f tokenFilter) received(entries []any) []Transaction {
	txs := make([]Transaction, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		tx := Transaction(m)
		if blockType, ok := tx.BlockType(); !ok || blockType != blockTypeReceive {
			continue
		}
		if !f.match(tx.TokenSymbol()) {
			continue
		}

		txs = append(txs, tx)
	}
	return txs
}
