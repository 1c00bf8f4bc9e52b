package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tomlrepo "github.com/bnema/weth-cli/internal/adapters/repo/toml"
	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const walletAddress domain.AccountID = "0x52908400098527886E0F7030069857D2E4169EE7"

func TestSecretKeyForLowercasesAddress(t *testing.T) {
	assert.Equal(t, "weth/wallets/0x52908400098527886e0f7030069857d2e4169ee7/private_key", SecretKeyFor(walletAddress))
}

func TestWalletServiceImportNewWallet(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	secretKey := SecretKeyFor(walletAddress)
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(domain.Account{}, domain.ErrAccountNotFound)
	store.EXPECT().Put(mockAnyContext(), secretKey, "0xkey").Return(nil)
	repo.EXPECT().Save(mockAnyContext(), domain.Account{ID: walletAddress, Name: "Primary", SecretRef: secretKey}).Return(nil)

	account, err := service.Import(context.Background(), ImportWalletCommand{
		ID:          "0x52908400098527886e0f7030069857d2e4169ee7",
		Name:        "  Primary ",
		SecretValue: "0xkey",
	})
	require.NoError(t, err)
	assert.Equal(t, walletAddress, account.ID)
	assert.Equal(t, secretKey, account.SecretRef)
}

func TestWalletServiceImportRejectsInvalidAddress(t *testing.T) {
	service := NewWalletService(mocks.NewMockAccountRepository(t), mocks.NewMockSecretStore(t))

	_, err := service.Import(context.Background(), ImportWalletCommand{ID: "not-an-address", SecretValue: "0xkey"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid account address")
}

func TestWalletServiceImportRotationDeletesPreviousSecretRef(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	existing := domain.Account{ID: walletAddress, Name: "Primary", SecretRef: "weth/old"}
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(existing, nil)
	store.EXPECT().Put(mockAnyContext(), "weth/new", "0xkey").Return(nil)
	repo.EXPECT().Save(mockAnyContext(), domain.Account{ID: walletAddress, Name: "Primary", SecretRef: "weth/new"}).Return(nil)
	store.EXPECT().Delete(mockAnyContext(), "weth/old").Return(nil)

	account, err := service.Import(context.Background(), ImportWalletCommand{ID: walletAddress, SecretKey: "weth/new", SecretValue: "0xkey"})
	require.NoError(t, err)
	assert.Equal(t, "Primary", account.Name)
}

func TestWalletServiceImportRotationIgnoresMissingPreviousSecret(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(domain.Account{ID: walletAddress, SecretRef: "weth/old"}, nil)
	store.EXPECT().Put(mockAnyContext(), "weth/new", "0xkey").Return(nil)
	repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)
	store.EXPECT().Delete(mockAnyContext(), "weth/old").Return(domain.ErrSecretNotFound)

	_, err := service.Import(context.Background(), ImportWalletCommand{ID: walletAddress, SecretKey: "weth/new", SecretValue: "0xkey"})
	require.NoError(t, err)
}

func TestWalletServiceImportRotationRollsBackWhenPreviousSecretDeleteFails(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	deleteErr := errors.New("delete old secret failed")
	existing := domain.Account{ID: walletAddress, Name: "Primary", SecretRef: "weth/old"}
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(existing, nil)
	store.EXPECT().Put(mockAnyContext(), "weth/new", "0xkey").Return(nil)
	repo.EXPECT().Save(mockAnyContext(), domain.Account{ID: walletAddress, Name: "Primary", SecretRef: "weth/new"}).Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "weth/old").Return(deleteErr)
	repo.EXPECT().Save(mockAnyContext(), existing).Return(nil).Once()
	store.EXPECT().Delete(mockAnyContext(), "weth/new").Return(nil)

	_, err := service.Import(context.Background(), ImportWalletCommand{ID: walletAddress, SecretKey: "weth/new", SecretValue: "0xkey"})
	require.ErrorIs(t, err, deleteErr)
	assert.ErrorContains(t, err, "delete previous signing key")
}

func TestWalletServiceImportRollsBackStoredKeyWhenSaveFails(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	saveErr := errors.New("disk full")
	secretKey := SecretKeyFor(walletAddress)
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(domain.Account{}, domain.ErrAccountNotFound)
	store.EXPECT().Put(mockAnyContext(), secretKey, "0xkey").Return(nil)
	repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(saveErr)
	store.EXPECT().Delete(mockAnyContext(), secretKey).Return(nil)

	_, err := service.Import(context.Background(), ImportWalletCommand{ID: walletAddress, SecretValue: "0xkey"})
	require.ErrorIs(t, err, saveErr)
}

func TestWalletServiceImportSameRefSaveFailureKeepsKey(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	saveErr := errors.New("disk full")
	secretKey := SecretKeyFor(walletAddress)
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(domain.Account{ID: walletAddress, SecretRef: secretKey}, nil)
	store.EXPECT().Put(mockAnyContext(), secretKey, "0xkey").Return(nil)
	repo.EXPECT().Save(mockAnyContext(), mock.Anything).Return(saveErr)

	_, err := service.Import(context.Background(), ImportWalletCommand{ID: walletAddress, SecretValue: "0xkey"})
	require.ErrorIs(t, err, saveErr)
}

func TestWalletServiceImportReturnsStoreError(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	putErr := errors.New("pass unavailable")
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(domain.Account{}, domain.ErrAccountNotFound)
	store.EXPECT().Put(mockAnyContext(), mock.Anything, "0xkey").Return(putErr)

	_, err := service.Import(context.Background(), ImportWalletCommand{ID: walletAddress, SecretValue: "0xkey"})
	require.ErrorIs(t, err, putErr)
}

func TestWalletServiceRemoveDeletesProfileAndKey(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	account := domain.Account{ID: walletAddress, SecretRef: "weth/key"}
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(account, nil)
	repo.EXPECT().Delete(mockAnyContext(), walletAddress).Return(nil)
	store.EXPECT().Delete(mockAnyContext(), "weth/key").Return(nil)

	require.NoError(t, service.Remove(context.Background(), RemoveWalletCommand{ID: walletAddress}))
}

func TestWalletServiceRemoveRestoresProfileWhenKeyDeleteFails(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	deleteErr := errors.New("permission denied")
	account := domain.Account{ID: walletAddress, SecretRef: "weth/key"}
	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(account, nil)
	repo.EXPECT().Delete(mockAnyContext(), walletAddress).Return(nil)
	store.EXPECT().Delete(mockAnyContext(), "weth/key").Return(deleteErr)
	repo.EXPECT().Save(mockAnyContext(), account).Return(nil)

	err := service.Remove(context.Background(), RemoveWalletCommand{ID: walletAddress})
	require.ErrorIs(t, err, deleteErr)
}

func TestWalletServiceRemoveUnknownWallet(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	service := NewWalletService(repo, mocks.NewMockSecretStore(t))

	repo.EXPECT().GetByID(mockAnyContext(), walletAddress).Return(domain.Account{}, domain.ErrAccountNotFound)

	err := service.Remove(context.Background(), RemoveWalletCommand{ID: walletAddress})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestWalletServiceListReportsSecretPresence(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	service := NewWalletService(repo, store)

	accounts := []domain.Account{
		{ID: walletAddress, Name: "one", SecretRef: "weth/one"},
		{ID: "0x8617E340B3D01FA5F11F306F4090FD50E238070D", Name: "two", SecretRef: "weth/two"},
		{ID: "0x3333333333333333333333333333333333333333", Name: "three"},
	}
	repo.EXPECT().List(mockAnyContext()).Return(accounts, nil)
	store.EXPECT().Get(mockAnyContext(), "weth/one").Return("0xkey", nil)
	store.EXPECT().Get(mockAnyContext(), "weth/two").Return("", domain.ErrSecretNotFound)

	statuses, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.True(t, statuses[0].HasSecret)
	assert.False(t, statuses[1].HasSecret)
	assert.False(t, statuses[2].HasSecret)
}

func TestWalletServiceListReturnsRepositoryError(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	service := NewWalletService(repo, mocks.NewMockSecretStore(t))

	listErr := errors.New("list failed")
	repo.EXPECT().List(mockAnyContext()).Return(nil, listErr)

	_, err := service.List(context.Background())
	require.ErrorIs(t, err, listErr)
}

func TestWalletServiceRenamePersistsAcrossServiceInstances(t *testing.T) {
	t.Parallel()

	cfg := viper.New()
	cfg.Set("accounts.path", filepath.Join(t.TempDir(), "wallets.toml"))

	repo, err := tomlrepo.NewRepository(cfg)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), domain.Account{ID: walletAddress, Name: "Primary", SecretRef: "weth/key"}))

	serviceA := NewWalletService(repo, nil)
	require.NoError(t, serviceA.Rename(context.Background(), walletAddress, "  Savings "))

	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Get(mockAnyContext(), "weth/key").Return("0xkey", nil)

	serviceB := NewWalletService(repo, store)
	statuses, err := serviceB.List(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, "Savings", statuses[0].Account.Name)
	assert.True(t, statuses[0].HasSecret)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
