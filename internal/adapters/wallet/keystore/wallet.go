package keystore

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet signs with hex private keys kept in a SecretStore and indexed by the
// account repository. When only is set, Accounts exposes just that account.
type Wallet struct {
	accounts ports.AccountRepository
	secrets  ports.SecretStore
	only     domain.AccountID
}

var _ ports.Wallet = (*Wallet)(nil)

func New(accounts ports.AccountRepository, secrets ports.SecretStore) *Wallet {
	return &Wallet{accounts: accounts, secrets: secrets}
}

// Restrict returns a wallet exposing a single account.
func (w *Wallet) Restrict(id domain.AccountID) *Wallet {
	return &Wallet{accounts: w.accounts, secrets: w.secrets, only: id}
}

func (w *Wallet) Accounts(ctx context.Context) ([]domain.AccountID, error) {
	if w.only != "" {
		if _, err := w.accounts.GetByID(ctx, w.only); err != nil {
			return nil, fmt.Errorf("get account by id: %w", err)
		}
		return []domain.AccountID{w.only}, nil
	}

	accounts, err := w.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	ids := make([]domain.AccountID, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}

	return ids, nil
}

func (w *Wallet) SignTx(ctx context.Context, id domain.AccountID, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	key, err := w.loadKey(ctx, id)
	if err != nil {
		return nil, err
	}

	signed, err := types.SignTx(tx, types.NewEIP155Signer(chainID), key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	return signed, nil
}

func (w *Wallet) loadKey(ctx context.Context, id domain.AccountID) (*ecdsa.PrivateKey, error) {
	account, err := w.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	raw, err := w.secrets.Get(ctx, account.SecretRef)
	if err != nil {
		return nil, fmt.Errorf("load signing key: %w", err)
	}

	key, err := ParsePrivateKey(raw)
	if err != nil {
		return nil, err
	}

	if derived := crypto.PubkeyToAddress(key.PublicKey); derived != id.Address() {
		return nil, fmt.Errorf("signing key for %s belongs to %s", id, derived.Hex())
	}

	return key, nil
}

// ParsePrivateKey accepts a hex key with or without the 0x prefix.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(strings.TrimPrefix(trimmed, "0x"), "0X")

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return key, nil
}

// AddressOf derives the account a private key signs for.
func AddressOf(raw string) (domain.AccountID, error) {
	key, err := ParsePrivateKey(raw)
	if err != nil {
		return "", err
	}

	return domain.AccountID(crypto.PubkeyToAddress(key.PublicKey).Hex()), nil
}
