package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/vitebridge/internal/walletops"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

const (
	flagAddress   = "address"
	flagMnemonic  = "mnemonics"
	flagIndex     = "address-id"
	flagPageIndex = "page-index"
	flagPageSize  = "page-size"
	flagToAddress = "to-address"
	flagTokenID   = "token-id"
	flagAmount    = "amount"
)

func mnemonicFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     flagMnemonic,
		Aliases:  []string{"m"},
		Usage:    "Seed phrase of the wallet.",
		Sources:  cli.EnvVars("VITEBRIDGE_MNEMONICS"),
		Required: required,
	}
}

func indexFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    flagIndex,
		Aliases: []string{"i"},
		Usage:   "Derivation index of the address within the seed phrase.",
		Value:   0,
	}
}

// createWalletCommand returns a CLI command that generates a new wallet.
//
// Usage example:
//
//	vitebridge create
func createWalletCommand(ops walletops.Service) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Generates a new seed phrase and its first address.",
		Usage:       "Creates a new wallet.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return printResult(c, ops.CreateWallet(ctx))
		},
	}
}

// balanceCommand returns a CLI command that prints a wallet's balances.
// The wallet is identified by address or by seed phrase and index.
//
// Usage example:
//
//	vitebridge balance --address vite_...
func balanceCommand(ops walletops.Service) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Prints the balances and pending transaction count of a wallet.",
		Usage:       "Reads a wallet balance by address or by seed phrase.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagAddress,
				Aliases: []string{"a"},
				Usage:   "Address of the wallet.",
			},
			mnemonicFlag(false),
			indexFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return printResult(c, ops.GetBalance(ctx, walletops.WalletRef{
				Address:  c.String(flagAddress),
				Mnemonic: c.String(flagMnemonic),
				Index:    c.Int(flagIndex),
			}))
		},
	}
}

// transactionsCommand returns a CLI command that prints a page of an address' history.
//
// Usage example:
//
//	vitebridge transactions --address vite_... --page-size 50
func transactionsCommand(ops walletops.Service) *cli.Command {
	return &cli.Command{
		Name:        "transactions",
		Description: "Prints one page of the transaction history of an address, newest first.",
		Usage:       "Lists the transactions of an address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagAddress,
				Aliases:  []string{"a"},
				Usage:    "Address of the wallet.",
				Required: true,
			},
			&cli.IntFlag{
				Name:    flagPageIndex,
				Aliases: []string{"i"},
				Usage:   "Zero-based page number.",
				Value:   0,
			},
			&cli.IntFlag{
				Name:    flagPageSize,
				Aliases: []string{"s"},
				Usage:   "Entries per page.",
				Value:   walletops.DefaultPageSize,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return printResult(c, ops.GetTransactions(ctx, walletops.TransactionsParams{
				Address:   c.String(flagAddress),
				PageIndex: c.Int(flagPageIndex),
				PageSize:  c.Int(flagPageSize),
			}))
		},
	}
}

// sendCommand returns a CLI command that transfers tokens.
// The amount is given in the token's smallest unit.
//
// Usage example:
//
//	vitebridge send -m "..." -a vite_... -t tti_... --amount 1000000000000000000
func sendCommand(ops walletops.Service) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Signs and submits a transfer. A submission that timed out is only repeated when the sender's transaction count did not change.",
		Usage:       "Sends tokens to an address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagToAddress,
				Aliases:  []string{"a"},
				Usage:    "Destination address.",
				Required: true,
			},
			mnemonicFlag(true),
			indexFlag(),
			&cli.StringFlag{
				Name:     flagTokenID,
				Aliases:  []string{"t"},
				Usage:    "Token id of the transferred token.",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagAmount,
				Usage:    "Amount in the token's smallest unit.",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amount, err := decimal.NewFromString(c.String(flagAmount))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", c.String(flagAmount), err)
			}

			return printResult(c, ops.SendTransaction(ctx, walletops.SendParams{
				ToAddress: c.String(flagToAddress),
				Mnemonic:  c.String(flagMnemonic),
				Index:     c.Int(flagIndex),
				TokenID:   c.String(flagTokenID),
				Amount:    amount,
			}))
		},
	}
}

// updateCommand returns a CLI command that receives a wallet's pending transactions.
//
// Usage example:
//
//	vitebridge update -m "..."
func updateCommand(ops walletops.Service) *cli.Command {
	return &cli.Command{
		Name:        "update",
		Description: "Receives every pending incoming transaction of a wallet.",
		Usage:       "Receives pending transactions.",
		Flags: []cli.Flag{
			mnemonicFlag(true),
			indexFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return printResult(c, ops.GetUpdates(ctx, walletops.UpdateParams{
				Mnemonic: c.String(flagMnemonic),
				Index:    c.Int(flagIndex),
			}))
		},
	}
}
