package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const otherAccount domain.AccountID = "0x2222222222222222222222222222222222222222"

type sessionFixture struct {
	ledger   *mocks.MockLedgerClient
	contract *mocks.MockTokenContract
	state    *SessionState
	tickers  *manualTickers
	service  *SessionService
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()

	f := sessionFixture{
		ledger:   mocks.NewMockLedgerClient(t),
		contract: mocks.NewMockTokenContract(t),
		tickers:  &manualTickers{},
	}
	f.state = NewSessionState(testNetwork(), &fixedClock{now: time.Unix(1_700_000_000, 0)})
	logger := zaptest.NewLogger(t)
	poller := NewBalancePoller(f.ledger, f.contract, f.state, logger, WithTickerFactory(f.tickers))
	f.service = NewSessionService(f.ledger, f.state, poller, logger)
	t.Cleanup(f.service.Disconnect)

	return f
}

func TestSessionServiceConnectRefreshesBalances(t *testing.T) {
	f := newSessionFixture(t)

	f.ledger.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.AccountID{testAccount, otherAccount}, nil)
	f.ledger.EXPECT().GetBalance(mockAnyContext(), testAccount).Return(eth(t, "4"), nil)
	f.contract.EXPECT().BalanceOf(mockAnyContext(), testAccount).Return(eth(t, "1"), nil)

	session, err := f.service.Connect(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, testAccount, session.AccountID)
	assert.Zero(t, session.NativeBalance.Cmp(eth(t, "4")))
	assert.Zero(t, session.TokenBalance.Cmp(eth(t, "1")))
	assert.False(t, session.UpdatedAt.IsZero())
}

func TestSessionServiceConnectPicksPreferredAccount(t *testing.T) {
	f := newSessionFixture(t)

	f.ledger.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.AccountID{testAccount, otherAccount}, nil)
	f.ledger.EXPECT().GetBalance(mockAnyContext(), otherAccount).Return(eth(t, "1"), nil)
	f.contract.EXPECT().BalanceOf(mockAnyContext(), otherAccount).Return(eth(t, "0"), nil)

	session, err := f.service.Connect(context.Background(), "0x2222222222222222222222222222222222222222")
	require.NoError(t, err)
	assert.Equal(t, otherAccount, session.AccountID)
}

func TestSessionServiceConnectUnknownPreferredAccount(t *testing.T) {
	f := newSessionFixture(t)

	f.ledger.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.AccountID{testAccount}, nil)

	_, err := f.service.Connect(context.Background(), otherAccount)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.False(t, f.state.Session().Active())
}

func TestSessionServiceConnectRejected(t *testing.T) {
	f := newSessionFixture(t)

	f.ledger.EXPECT().RequestAccounts(mockAnyContext()).
		Return(nil, domain.NewOperationError(domain.ErrorKindConnectionRejected, "request accounts", nil))

	_, err := f.service.Connect(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrConnectionRejected)
	assert.False(t, f.service.Snapshot().Session.Active())
}

func TestSessionServiceConnectKeepsSessionWhenFirstRefreshFails(t *testing.T) {
	f := newSessionFixture(t)

	f.ledger.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.AccountID{testAccount}, nil)
	f.ledger.EXPECT().GetBalance(mockAnyContext(), testAccount).
		Return(domain.Amount{}, domain.NewOperationError(domain.ErrorKindTransportFailure, "get balance", errors.New("dial tcp: refused")))
	f.contract.EXPECT().BalanceOf(mockAnyContext(), testAccount).Return(eth(t, "1"), nil)

	session, err := f.service.Connect(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, session.Active())

	snapshot := f.service.Snapshot()
	assert.True(t, snapshot.Stale)
	assert.True(t, snapshot.Session.UpdatedAt.IsZero())
}

func TestSessionServiceWatchAndDisconnect(t *testing.T) {
	f := newSessionFixture(t)

	require.ErrorIs(t, f.service.Watch(context.Background()), domain.ErrNoSession)

	f.ledger.EXPECT().RequestAccounts(mockAnyContext()).Return([]domain.AccountID{testAccount}, nil)
	f.ledger.EXPECT().GetBalance(mock.Anything, testAccount).Return(eth(t, "1"), nil)
	f.contract.EXPECT().BalanceOf(mock.Anything, testAccount).Return(eth(t, "1"), nil)

	_, err := f.service.Connect(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, f.service.Watch(context.Background()))
	ticker := f.tickers.last()

	f.service.Disconnect()

	assert.True(t, ticker.stopped.Load())
	assert.False(t, f.service.Snapshot().Session.Active())
}
