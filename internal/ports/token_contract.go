package ports

import (
	"context"

	"github.com/bnema/weth-cli/internal/domain"
)

// TokenContract is a typed view of the wrapped-token contract. State-changing
// calls return once the transaction is confirmed.
type TokenContract interface {
	Address() domain.AccountID
	BalanceOf(ctx context.Context, account domain.AccountID) (domain.Amount, error)
	Allowance(ctx context.Context, owner, spender domain.AccountID) (domain.Amount, error)
	Approve(ctx context.Context, from, spender domain.AccountID, amount domain.Amount) (domain.TxReceipt, error)
	Deposit(ctx context.Context, from domain.AccountID, amount domain.Amount) (domain.TxReceipt, error)
	Withdraw(ctx context.Context, from domain.AccountID, amount domain.Amount) (domain.TxReceipt, error)
}
