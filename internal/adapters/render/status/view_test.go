package status

import (
	"testing"
	"time"

	"github.com/bnema/weth-cli/internal/application"
	"github.com/bnema/weth-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, v string) domain.Amount {
	t.Helper()
	a, err := domain.ParseAmount(v, 18)
	require.NoError(t, err)
	return a
}

func testSnapshot(t *testing.T, now time.Time) application.Snapshot {
	return application.Snapshot{
		Network: domain.Network{
			Name:         "sepolia",
			TokenAddress: "0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14",
			TokenSymbol:  "WETH",
			Decimals:     18,
		},
		Session: domain.Session{
			ID:            "session-1",
			AccountID:     "0x52908400098527886E0F7030069857D2E4169EE7",
			NativeBalance: amount(t, "1.5"),
			TokenBalance:  amount(t, "0.5"),
			UpdatedAt:     now.Add(-2 * time.Second),
		},
		Deposit:  domain.PendingOperation{Kind: domain.OperationDeposit, Status: domain.StatusSucceeded, TxHashes: []domain.TxHash{"0xdep"}},
		Withdraw: domain.PendingOperation{Kind: domain.OperationWithdraw, Status: domain.StatusFailed, Reason: "insufficient balance"},
	}
}

func TestRenderConnectedSession(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(testSnapshot(t, now), RenderOptions{Now: now, AccountName: "Primary", ShowTxs: true})
	require.NoError(t, err)

	assert.Contains(t, output, "WETH on sepolia")
	assert.Contains(t, output, "Primary (0x52908400098527886E0F7030069857D2E4169EE7)")
	assert.Contains(t, output, "ETH")
	assert.Contains(t, output, "1.5")
	assert.Contains(t, output, "0.5")
	assert.Contains(t, output, " 25%")
	assert.Contains(t, output, "updated 2s ago")
	assert.Contains(t, output, "succeeded")
	assert.Contains(t, output, "tx 0xdep")
	assert.Contains(t, output, "failed: insufficient balance")
	assert.NotContains(t, output, "stale")
}

func TestRenderStaleMarker(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	snapshot := testSnapshot(t, now)
	snapshot.Stale = true

	output, err := Render(snapshot, RenderOptions{Now: now})
	require.NoError(t, err)
	assert.Contains(t, output, "[stale]")
	assert.Contains(t, output, "0x5290…9EE7")
}

func TestRenderDisconnected(t *testing.T) {
	output, err := Render(application.Snapshot{Network: domain.Network{Name: "sepolia", TokenSymbol: "WETH"}}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "Not connected.")
}

func TestFormatAmountTruncatesLongFractions(t *testing.T) {
	assert.Equal(t, "0.123456…", formatAmount(amount(t, "0.1234567891"), 18))
	assert.Equal(t, "2", formatAmount(amount(t, "2"), 18))
	assert.Equal(t, "0", formatAmount(domain.ZeroAmount(), 18))
}

func TestNativeSymbolFromWrappedSymbol(t *testing.T) {
	assert.Equal(t, "ETH", nativeSymbol(domain.Network{TokenSymbol: "WETH"}))
	assert.Equal(t, "MATIC", nativeSymbol(domain.Network{TokenSymbol: "WMATIC"}))
	assert.Equal(t, "native", nativeSymbol(domain.Network{TokenSymbol: "DAI"}))
}

func TestWrappedShare(t *testing.T) {
	assert.Equal(t, 0.0, wrappedShare(domain.Session{}))
	assert.InDelta(t, 25.0, wrappedShare(domain.Session{NativeBalance: amount(t, "3"), TokenBalance: amount(t, "1")}), 0.0001)
}
