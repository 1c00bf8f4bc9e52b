package ports

import (
	"context"

	"github.com/bnema/weth-cli/internal/domain"
)

// CallRequest is a read-only contract call.
type CallRequest struct {
	To   domain.AccountID
	Data []byte
}

// SendRequest is a state-changing transaction. GasLimit is a hard ceiling.
type SendRequest struct {
	From     domain.AccountID
	To       domain.AccountID
	Data     []byte
	Value    domain.Amount
	GasLimit uint64
	// Summary is shown to the user when the wallet asks for confirmation.
	Summary string
}

// LedgerClient is the node connection. Read failures are TransportFailure;
// Send fails with UserRejected when the wallet declines to sign.
type LedgerClient interface {
	RequestAccounts(ctx context.Context) ([]domain.AccountID, error)
	GetBalance(ctx context.Context, account domain.AccountID) (domain.Amount, error)
	Call(ctx context.Context, req CallRequest) ([]byte, error)
	Send(ctx context.Context, req SendRequest) (domain.TxHash, error)
	WaitReceipt(ctx context.Context, hash domain.TxHash) (domain.TxReceipt, error)
}
