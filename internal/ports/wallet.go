package ports

import (
	"context"
	"math/big"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/ethereum/go-ethereum/core/types"
)

// Wallet holds signing keys and mediates the user's consent.
type Wallet interface {
	Accounts(ctx context.Context) ([]domain.AccountID, error)
	SignTx(ctx context.Context, account domain.AccountID, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

// Prompter asks the user a yes/no question. A false answer is a rejection,
// not an error.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}
