package walletops

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/vitebridge/internal/nodeexec"
	"github.com/gabapcia/vitebridge/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

// DefaultPageSize is used by GetTransactions when TransactionsParams.PageSize is zero.
const DefaultPageSize = 20

// Tool flags.
const (
	flagAddress     = "-a"
	flagMnemonic    = "-m"
	flagIndex       = "-i"
	flagDestination = "-d"
	flagToken       = "-t"
	flagPageSize    = "-s"
	flagAmount      = "-a"
)

// ErrInvalidParams is returned when operation parameters fail validation.
// No tool invocation happens in that case.
var ErrInvalidParams = errors.New("invalid parameters")

// WalletRef identifies a wallet either by address or by seed phrase and
// derivation index. When both are set, lookups use the address.
type WalletRef struct {
	Address  string `validate:"required_without=Mnemonic"`
	Mnemonic string `validate:"required_without=Address"`
	Index    int    `validate:"gte=0"`
}

// TransactionsParams selects a page of an address' transaction history.
type TransactionsParams struct {
	Address   string `validate:"required"`
	PageIndex int    `validate:"gte=0"`
	PageSize  int    `validate:"gte=0"` // zero means DefaultPageSize
}

// SendParams describes a transfer signed with the sender's seed phrase.
//
// Amount is expressed in the token's smallest unit and must be a positive integer.
type SendParams struct {
	ToAddress string          `validate:"required"`
	Mnemonic  string          `validate:"required"`
	Index     int             `validate:"gte=0"`
	TokenID   string          `validate:"required"`
	Amount    decimal.Decimal `validate:"base_units"`
}

// UpdateParams selects the wallet whose pending transactions are received.
type UpdateParams struct {
	Mnemonic string `validate:"required"`
	Index    int    `validate:"gte=0"`
}

func validate(params any) error {
	if err := validator.Validate(params); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}

func (r WalletRef) args() []string {
	if r.Address != "" {
		return []string{flagAddress, r.Address}
	}
	return []string{flagMnemonic, r.Mnemonic, flagIndex, strconv.Itoa(r.Index)}
}

func (p TransactionsParams) args() []string {
	size := p.PageSize
	if size == 0 {
		size = DefaultPageSize
	}

	return []string{
		flagAddress, p.Address,
		flagIndex, strconv.Itoa(p.PageIndex),
		flagPageSize, strconv.Itoa(size),
	}
}

func (p SendParams) args() []string {
	return []string{
		flagMnemonic, p.Mnemonic,
		flagIndex, strconv.Itoa(p.Index),
		flagDestination, p.ToAddress,
		flagToken, p.TokenID,
		flagAmount, p.Amount.String(),
	}
}

// sender is the wallet paying for a transfer.
func (p SendParams) sender() WalletRef {
	return WalletRef{Mnemonic: p.Mnemonic, Index: p.Index}
}

func (p UpdateParams) args() []string {
	return []string{flagMnemonic, p.Mnemonic, flagIndex, strconv.Itoa(p.Index)}
}

// commandFunc returns a builder producing a fresh command on every call.
func commandFunc(tool nodeexec.Tool, subcommand string, args []string) func() nodeexec.Command {
	return func() nodeexec.Command {
		return tool.Command(subcommand, args...)
	}
}
