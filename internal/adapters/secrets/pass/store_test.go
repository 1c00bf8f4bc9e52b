package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "weth/wallets/0x52908400098527886e0f7030069857d2e4169ee7/private_key"

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", testKey}, args)
			assert.Equal(t, "0xabc\n", input)
			return "", "", nil
		},
	}

	require.NoError(t, store.Put(context.Background(), testKey, "  0xabc\n"))
	assert.True(t, called)
}

func TestStoreGetReturnsFirstLineOnly(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", testKey}, args)
			assert.Empty(t, input)
			return "0xabc\nimported: 2026-01-01\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", value)
}

func TestStoreGetMissingEntryIsNotFound(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: " + testKey + " is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), testKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteUsesPassRemoveAndIgnoresMissing(t *testing.T) {
	t.Parallel()

	calls := 0
	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			calls++
			assert.Equal(t, []string{"rm", "-f", testKey}, args)
			if calls == 2 {
				return "", "Error: " + testKey + " is not in the password store.", errors.New("exit status 1")
			}
			return "", "", nil
		},
	}

	require.NoError(t, store.Delete(context.Background(), testKey))
	require.NoError(t, store.Delete(context.Background(), testKey))
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed: No secret key", errors.New("exit status 2")
		},
	}

	_, err := store.Get(context.Background(), testKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, testKey)
	assert.ErrorContains(t, err, "decryption failed")
	assert.NotErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreCanceledContextSkipsCommand(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(context.Context, string, ...string) (string, string, error) {
			t.Fatal("pass must not run")
			return "", "", nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, testKey)
	require.ErrorIs(t, err, context.Canceled)
}
