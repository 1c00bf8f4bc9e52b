package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AccountID is the checksummed hex address of a wallet account.
type AccountID string

// Account is a locally configured wallet profile. The signing key itself lives
// in the secret store under SecretRef.
type Account struct {
	ID        AccountID
	Name      string
	SecretRef string
}

func NewAccountID(raw string) (AccountID, error) {
	trimmed := strings.TrimSpace(raw)
	if !common.IsHexAddress(trimmed) {
		return "", fmt.Errorf("invalid account address %q", raw)
	}
	return AccountID(common.HexToAddress(trimmed).Hex()), nil
}

func (id AccountID) Address() common.Address {
	return common.HexToAddress(string(id))
}

func (id AccountID) Short() string {
	s := string(id)
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}

func (a Account) Validate() error {
	if _, err := NewAccountID(string(a.ID)); err != nil {
		return err
	}
	if strings.TrimSpace(a.SecretRef) == "" {
		return fmt.Errorf("secret reference is required")
	}
	return nil
}

func (a Account) DisplayName() string {
	if trimmed := strings.TrimSpace(a.Name); trimmed != "" {
		return trimmed
	}
	return a.ID.Short()
}
