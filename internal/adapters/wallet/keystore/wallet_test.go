package keystore

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports/mocks"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) (string, domain.AccountID) {
	t.Helper()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	return "0x" + hex.EncodeToString(crypto.FromECDSA(key)), domain.AccountID(crypto.PubkeyToAddress(key.PublicKey).Hex())
}

func TestAddressOfAcceptsPrefixedAndBareKeys(t *testing.T) {
	raw, id := newKey(t)

	got, err := AddressOf(raw)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = AddressOf(raw[2:])
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = AddressOf("not-a-key")
	require.Error(t, err)
}

func TestWalletSignTxRecoversSender(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	wallet := New(repo, store)

	raw, id := newKey(t)
	repo.EXPECT().GetByID(mock.Anything, id).Return(domain.Account{ID: id, SecretRef: "weth/wallets/main/private_key"}, nil)
	store.EXPECT().Get(mock.Anything, "weth/wallets/main/private_key").Return(raw, nil)

	chainID := big.NewInt(11155111)
	tx := types.NewTransaction(0, common.HexToAddress("0x2222222222222222222222222222222222222222"), big.NewInt(1), 21000, big.NewInt(1), nil)

	signed, err := wallet.SignTx(context.Background(), id, tx, chainID)
	require.NoError(t, err)

	sender, err := types.Sender(types.NewEIP155Signer(chainID), signed)
	require.NoError(t, err)
	assert.Equal(t, id.Address(), sender)
}

func TestWalletSignTxRejectsMismatchedKey(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)
	wallet := New(repo, store)

	_, id := newKey(t)
	otherRaw, _ := newKey(t)
	repo.EXPECT().GetByID(mock.Anything, id).Return(domain.Account{ID: id, SecretRef: "ref"}, nil)
	store.EXPECT().Get(mock.Anything, "ref").Return(otherRaw, nil)

	tx := types.NewTransaction(0, common.Address{}, big.NewInt(0), 21000, big.NewInt(1), nil)
	_, err := wallet.SignTx(context.Background(), id, tx, big.NewInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to")
}

func TestWalletRestrictExposesSingleAccount(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	store := mocks.NewMockSecretStore(t)

	_, id := newKey(t)
	repo.EXPECT().GetByID(mock.Anything, id).Return(domain.Account{ID: id, SecretRef: "ref"}, nil)

	accounts, err := New(repo, store).Restrict(id).Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.AccountID{id}, accounts)
}
