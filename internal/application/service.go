package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
)

// WalletService manages wallet profiles and the signing keys behind them.
type WalletService struct {
	repo  ports.AccountRepository
	store ports.SecretStore
}

func NewWalletService(repo ports.AccountRepository, store ports.SecretStore) *WalletService {
	return &WalletService{repo: repo, store: store}
}

// SecretKeyFor is the secret store key holding the private key of id.
func SecretKeyFor(id domain.AccountID) string {
	return fmt.Sprintf("weth/wallets/%s/private_key", strings.ToLower(string(id)))
}

// Import stores the key and saves the profile. A failed save removes the
// stored key again; a replaced key is deleted only once the profile points at
// the new one.
func (s *WalletService) Import(ctx context.Context, cmd ImportWalletCommand) (domain.Account, error) {
	id, err := domain.NewAccountID(string(cmd.ID))
	if err != nil {
		return domain.Account{}, err
	}

	secretKey := cmd.SecretKey
	if secretKey == "" {
		secretKey = SecretKeyFor(id)
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, fmt.Errorf("get account by id: %w", err)
		}
		account = domain.Account{ID: id}
	}
	original := account
	previousSecretRef := account.SecretRef

	if name := strings.TrimSpace(cmd.Name); name != "" {
		account.Name = name
	}

	if err := s.store.Put(ctx, secretKey, cmd.SecretValue); err != nil {
		return domain.Account{}, fmt.Errorf("store signing key: %w", err)
	}

	account.SecretRef = secretKey
	if err := s.repo.Save(ctx, account); err != nil {
		if previousSecretRef == secretKey {
			return domain.Account{}, fmt.Errorf("save wallet: %w", err)
		}
		if rollbackErr := s.store.Delete(ctx, secretKey); rollbackErr != nil {
			return domain.Account{}, fmt.Errorf("save wallet and rollback stored key: %w", errors.Join(err, rollbackErr))
		}
		return domain.Account{}, fmt.Errorf("save wallet: %w", err)
	}

	if previousSecretRef != "" && previousSecretRef != secretKey {
		if err := s.store.Delete(ctx, previousSecretRef); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			var rollbackErr error
			if restoreErr := s.repo.Save(ctx, original); restoreErr != nil {
				rollbackErr = errors.Join(rollbackErr, restoreErr)
			}
			if deleteErr := s.store.Delete(ctx, secretKey); deleteErr != nil {
				rollbackErr = errors.Join(rollbackErr, deleteErr)
			}
			if rollbackErr != nil {
				return domain.Account{}, fmt.Errorf("delete previous signing key and rollback import: %w", errors.Join(err, rollbackErr))
			}
			return domain.Account{}, fmt.Errorf("delete previous signing key: %w", err)
		}
	}

	return account, nil
}

// Remove deletes the profile and then its key. If the key cannot be deleted
// the profile is restored so the key stays reachable.
func (s *WalletService) Remove(ctx context.Context, cmd RemoveWalletCommand) error {
	account, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	if err := s.repo.Delete(ctx, account.ID); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}

	if account.SecretRef == "" {
		return nil
	}

	if err := s.store.Delete(ctx, account.SecretRef); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		if restoreErr := s.repo.Save(ctx, account); restoreErr != nil {
			return fmt.Errorf("delete signing key and restore wallet: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete signing key: %w", err)
	}

	return nil
}

func (s *WalletService) Rename(ctx context.Context, id domain.AccountID, name string) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	account.Name = strings.TrimSpace(name)

	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save wallet name: %w", err)
	}

	return nil
}

func (s *WalletService) List(ctx context.Context) ([]WalletStatus, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	statuses := make([]WalletStatus, 0, len(accounts))
	for _, account := range accounts {
		statuses = append(statuses, s.status(ctx, account))
	}

	return statuses, nil
}

func (s *WalletService) status(ctx context.Context, account domain.Account) WalletStatus {
	if account.SecretRef == "" {
		return WalletStatus{Account: account}
	}

	_, err := s.store.Get(ctx, account.SecretRef)
	return WalletStatus{Account: account, HasSecret: err == nil}
}
