package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/vitebridge/internal/opretry"
	"github.com/gabapcia/vitebridge/internal/txlistener"
	"github.com/gabapcia/vitebridge/internal/walletops"

	"github.com/urfave/cli/v3"
)

// ErrOperationFailed is returned by a wallet command whose result is failed.
// The result itself has already been printed.
var ErrOperationFailed = errors.New("operation failed")

// Run initializes and executes the vitebridge CLI application.
//
// It registers all available commands, including:
//
//   - `create`, `balance`, `transactions`, `send` and `update`: one wallet
//     operation each, printing its result as JSON.
//   - `listen`: polls wallets for incoming transactions until interrupted.
//
// consumer receives the transactions found by `listen`. When nil, they are
// printed as JSON lines.
func Run(ctx context.Context, ops walletops.Service, ln txlistener.Service, consumer txlistener.Consumer) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "vitebridge",
		Description:           "Command-line interface for the Vite wallet tool.",
		Usage:                 "vitebridge [command] [flags]",
		Commands: []*cli.Command{
			createWalletCommand(ops),
			balanceCommand(ops),
			transactionsCommand(ops),
			sendCommand(ops),
			updateCommand(ops),
			listenCommand(ln, consumer),
		},
	}

	return app.Run(ctx, os.Args)
}

// output returns the writer of the root command, stdout by default.
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// printResult writes result as indented JSON and turns a failed result into ErrOperationFailed.
func printResult(c *cli.Command, result opretry.Result) error {
	enc := json.NewEncoder(output(c))
	enc.SetIndent("", "  ")

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if result.Failed {
		return fmt.Errorf("%w: %s", ErrOperationFailed, result.Message)
	}
	return nil
}
