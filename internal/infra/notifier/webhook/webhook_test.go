package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	transporthttp "github.com/gabapcia/vitebridge/internal/pkg/transport/http"
	"github.com/gabapcia/vitebridge/internal/txlistener"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wallet = txlistener.Wallet{Address: "vite_a", Mnemonic: "secret seed", Index: 2}

func newClient() *retryablehttp.Client {
	return transporthttp.NewClient(
		transporthttp.WithRetryMax(1),
		transporthttp.WithRetryWaitMin(time.Millisecond),
		transporthttp.WithRetryWaitMax(time.Millisecond),
	)
}

func TestNotifier_Consume(t *testing.T) {
	t.Run("should post the transactions without the seed phrase", func(t *testing.T) {
		bodies := make(chan []byte, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, _ := io.ReadAll(r.Body)
			bodies <- body
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		txs := []txlistener.Transaction{{"hash": "h1", "blockType": int64(4)}}
		err := New(server.URL, newClient()).Consume(t.Context(), wallet, txs)
		require.NoError(t, err)

		body := <-bodies
		assert.NotContains(t, string(body), wallet.Mnemonic)

		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "vite_a", got["address"])
		assert.Equal(t, float64(2), got["index"])
		assert.Equal(t, []any{map[string]any{"hash": "h1", "blockType": float64(4)}}, got["transactions"])
	})

	t.Run("should send an empty list instead of null", func(t *testing.T) {
		bodies := make(chan []byte, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			bodies <- body
		}))
		defer server.Close()

		require.NoError(t, New(server.URL, newClient()).Consume(t.Context(), wallet, nil))

		assert.Contains(t, string(<-bodies), `"transactions":[]`)
	})

	t.Run("should fail on a client error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		err := New(server.URL, newClient()).Consume(t.Context(), wallet, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "400")
	})

	t.Run("should fail when retries are exhausted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		err := New(server.URL, newClient()).Consume(t.Context(), wallet, nil)

		assert.Error(t, err)
	})
}
