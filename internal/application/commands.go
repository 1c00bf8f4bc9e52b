package application

import (
	"github.com/bnema/weth-cli/internal/domain"
)

type SubmitCommand struct {
	Kind  domain.OperationKind
	Input string
}

type ImportWalletCommand struct {
	ID          domain.AccountID
	Name        string
	SecretKey   string
	SecretValue string
}

type RemoveWalletCommand struct {
	ID domain.AccountID
}
