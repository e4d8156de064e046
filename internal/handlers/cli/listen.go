package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gabapcia/vitebridge/internal/txlistener"

	"github.com/urfave/cli/v3"
)

const (
	flagWallet    = "wallet"
	flagToken     = "token"
	flagInterval  = "interval"
	flagSkipEmpty = "skip-empty"
)

var ErrInvalidWallet = errors.New("invalid wallet")

// parseWallet reads a wallet given as ADDRESS:MNEMONIC[:INDEX].
func parseWallet(s string) (txlistener.Wallet, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return txlistener.Wallet{}, fmt.Errorf("%w: expected ADDRESS:MNEMONIC[:INDEX]", ErrInvalidWallet)
	}

	wallet := txlistener.Wallet{
		Address:  strings.TrimSpace(parts[0]),
		Mnemonic: strings.TrimSpace(parts[1]),
	}

	if len(parts) == 3 {
		index, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return txlistener.Wallet{}, fmt.Errorf("%w: index %q: %w", ErrInvalidWallet, parts[2], err)
		}
		wallet.Index = index
	}

	return wallet, nil
}

// printConsumer writes every delivery as one JSON line.
type printConsumer struct {
	enc *json.Encoder
}

type delivery struct {
	Address      string                   `json:"address"`
	Index        int                      `json:"index"`
	Transactions []txlistener.Transaction `json:"transactions"`
}

func newPrintConsumer(w io.Writer) printConsumer {
	return printConsumer{enc: json.NewEncoder(w)}
}

func (p printConsumer) Consume(_ context.Context, wallet txlistener.Wallet, txs []txlistener.Transaction) error {
	if txs == nil {
		txs = []txlistener.Transaction{}
	}

	return p.enc.Encode(delivery{
		Address:      wallet.Address,
		Index:        wallet.Index,
		Transactions: txs,
	})
}

// listenCommand returns a CLI command that watches wallets for incoming transactions.
//
// Usage example:
//
//	vitebridge listen --wallet "vite_...:word1 word2 ...:0" --token VITE
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or ctx is done.
func listenCommand(ln txlistener.Service, consumer txlistener.Consumer) *cli.Command {
	return &cli.Command{
		Name:        "listen",
		Description: "Polls the given wallets, receives their pending transactions and delivers the incoming ones.",
		Usage:       "Listens for incoming transactions. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     flagWallet,
				Aliases:  []string{"w"},
				Usage:    "Wallet to watch as ADDRESS:MNEMONIC[:INDEX]. Repeatable.",
				Sources:  cli.EnvVars("VITEBRIDGE_LISTEN_WALLETS"),
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    flagToken,
				Aliases: []string{"t"},
				Usage:   "Token symbol filter, matched case-insensitively. " + txlistener.AllTokens + " matches every token.",
				Value:   []string{txlistener.AllTokens},
			},
			&cli.DurationFlag{
				Name:    flagInterval,
				Usage:   "Pause between polling rounds.",
				Sources: cli.EnvVars("VITEBRIDGE_POLL_INTERVAL"),
				Value:   txlistener.DefaultPollInterval,
			},
			&cli.BoolFlag{
				Name:  flagSkipEmpty,
				Usage: "Do not deliver when no received transaction passed the token filters.",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var wallets []txlistener.Wallet
			for _, raw := range c.StringSlice(flagWallet) {
				wallet, err := parseWallet(raw)
				if err != nil {
					return err
				}
				wallets = append(wallets, wallet)
			}

			cfg := txlistener.Config{
				Wallets:      wallets,
				TokenFilters: c.StringSlice(flagToken),
				PollInterval: c.Duration(flagInterval),
				Consumer:     consumer,
				SkipEmpty:    c.Bool(flagSkipEmpty),
			}
			if cfg.Consumer == nil {
				cfg.Consumer = newPrintConsumer(output(c))
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := ln.Start(ctx, cfg); err != nil {
				return err
			}
			defer ln.Stop()

			select {
			case <-quit:
			case <-ctx.Done():
			}
			return nil
		},
	}
}
