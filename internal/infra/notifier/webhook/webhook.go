// Package webhook delivers the transactions found by the listener to an HTTP endpoint.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gabapcia/vitebridge/internal/pkg/logger"
	"github.com/gabapcia/vitebridge/internal/txlistener"

	"github.com/hashicorp/go-retryablehttp"
)

// payload is the JSON body posted for every delivery. The wallet seed phrase
// never leaves the process.
type payload struct {
	Address      string                   `json:"address"`
	Index        int                      `json:"index"`
	Transactions []txlistener.Transaction `json:"transactions"`
}

// Notifier posts deliveries as JSON to a fixed URL.
type Notifier struct {
	url    string
	client *retryablehttp.Client
}

var _ txlistener.Consumer = (*Notifier)(nil)

// New creates a Notifier posting to url with client.
func New(url string, client *retryablehttp.Client) *Notifier {
	return &Notifier{
		url:    url,
		client: client,
	}
}

// Consume posts the transactions of wallet. Any status outside 2xx is an error.
func (n *Notifier) Consume(ctx context.Context, wallet txlistener.Wallet, txs []txlistener.Transaction) error {
	if txs == nil {
		txs = []txlistener.Transaction{}
	}

	body, err := json.Marshal(payload{
		Address:      wallet.Address,
		Index:        wallet.Index,
		Transactions: txs,
	})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	logger.Debug(ctx, "transactions delivered to webhook",
		"wallet.address", wallet.Address,
		"transactions", len(txs),
	)

	return nil
}
