package application

import (
	"time"

	"github.com/bnema/weth-cli/internal/domain"
)

// Snapshot is what the shell renders.
type Snapshot struct {
	Network    domain.Network
	Session    domain.Session
	Deposit    domain.PendingOperation
	Withdraw   domain.PendingOperation
	Stale      bool
	CapturedAt time.Time
}

func (s Snapshot) Operation(kind domain.OperationKind) domain.PendingOperation {
	if kind == domain.OperationWithdraw {
		return s.Withdraw
	}
	return s.Deposit
}

type WalletStatus struct {
	Account   domain.Account
	HasSecret bool
}
