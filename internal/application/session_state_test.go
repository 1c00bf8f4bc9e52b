package application

import (
	"testing"
	"time"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateStartIssuesFreshSessions(t *testing.T) {
	state := NewSessionState(testNetwork(), &fixedClock{now: time.Unix(0, 0)})

	first := state.Start(testAccount)
	require.True(t, first.Active())
	require.NoError(t, firstErr(state.Begin(domain.OperationDeposit, "1")))

	second := state.Start(testAccount)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.StatusIdle, state.Operation(domain.OperationDeposit).Status)
}

func TestSessionStateBeginRequiresSession(t *testing.T) {
	state := NewSessionState(testNetwork(), nil)

	_, err := state.Begin(domain.OperationDeposit, "1")
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionStateBeginRejectsSecondSubmission(t *testing.T) {
	state := NewSessionState(testNetwork(), &fixedClock{now: time.Unix(0, 0)})
	state.Start(testAccount)

	_, err := state.Begin(domain.OperationWithdraw, "1")
	require.NoError(t, err)
	state.SetStatus(domain.OperationWithdraw, domain.StatusAwaitingApproval)
	state.RecordTx(domain.OperationWithdraw, "0xapprove")

	_, err = state.Begin(domain.OperationWithdraw, "2")
	require.ErrorIs(t, err, domain.ErrAlreadyInProgress)

	op := state.Operation(domain.OperationWithdraw)
	assert.Equal(t, "1", op.Input)
	assert.Equal(t, domain.StatusAwaitingApproval, op.Status)
	assert.Equal(t, []domain.TxHash{"0xapprove"}, op.TxHashes)

	_, err = state.Begin(domain.OperationDeposit, "1")
	require.NoError(t, err, "deposit and withdraw slots are independent")
}

func TestSessionStateBeginKeepsPreviousFailureUntilSuccess(t *testing.T) {
	state := NewSessionState(testNetwork(), &fixedClock{now: time.Unix(0, 0)})
	session := state.Start(testAccount)

	require.NoError(t, firstErr(state.Begin(domain.OperationDeposit, "5")))
	state.Fail(domain.OperationDeposit, domain.NewOperationError(domain.ErrorKindInsufficientBalance, "deposit", nil))

	require.NoError(t, firstErr(state.Begin(domain.OperationDeposit, "1")))
	op := state.Operation(domain.OperationDeposit)
	assert.Equal(t, domain.StatusValidating, op.Status)
	assert.Equal(t, "insufficient balance", op.Reason)
	assert.Equal(t, domain.ErrorKindInsufficientBalance, op.ErrorKind)

	op = state.Succeed(session.ID, domain.OperationDeposit, eth(t, "1"))
	assert.Equal(t, domain.StatusSucceeded, op.Status)
	assert.Empty(t, op.Reason)
	assert.Empty(t, op.ErrorKind)
}

func TestSessionStateRecordTxIgnoresEmptyHash(t *testing.T) {
	state := NewSessionState(testNetwork(), nil)
	state.Start(testAccount)

	state.RecordTx(domain.OperationDeposit, "")
	assert.Empty(t, state.Operation(domain.OperationDeposit).TxHashes)
}

func TestSessionStateSucceedAppliesOnlyToOriginatingSession(t *testing.T) {
	state := NewSessionState(testNetwork(), &fixedClock{now: time.Unix(0, 0)})

	old := state.Start(testAccount)
	require.True(t, state.PublishBalances(old.ID, eth(t, "2"), eth(t, "0")))

	current := state.Start(testAccount)
	require.True(t, state.PublishBalances(current.ID, eth(t, "5"), eth(t, "1")))

	state.Succeed(old.ID, domain.OperationDeposit, eth(t, "1"))
	assert.Zero(t, state.Session().NativeBalance.Cmp(eth(t, "5")))

	op := state.Succeed(current.ID, domain.OperationDeposit, eth(t, "1"))
	assert.Equal(t, domain.StatusSucceeded, op.Status)
	assert.Zero(t, state.Session().NativeBalance.Cmp(eth(t, "4")))
	assert.Zero(t, state.Session().TokenBalance.Cmp(eth(t, "2")))
}

func TestSessionStateOperationReturnsCopies(t *testing.T) {
	state := NewSessionState(testNetwork(), nil)
	state.Start(testAccount)
	state.RecordTx(domain.OperationDeposit, "0xa")

	op := state.Operation(domain.OperationDeposit)
	op.TxHashes[0] = "0xmutated"

	assert.Equal(t, domain.TxHash("0xa"), state.Operation(domain.OperationDeposit).TxHashes[0])
}

func TestSessionStateSnapshotFlagsStaleBalances(t *testing.T) {
	clock := &fixedClock{now: time.Unix(1_700_000_000, 0)}
	state := NewSessionState(testNetwork(), clock)

	assert.False(t, state.Snapshot().Stale, "no session is never stale")

	session := state.Start(testAccount)
	assert.True(t, state.Snapshot().Stale, "never refreshed")

	require.True(t, state.PublishBalances(session.ID, eth(t, "1"), eth(t, "1")))
	assert.False(t, state.Snapshot().Stale)

	clock.Advance(9 * time.Second)
	assert.False(t, state.Snapshot().Stale)

	clock.Advance(time.Second)
	snapshot := state.Snapshot()
	assert.True(t, snapshot.Stale)
	assert.Equal(t, clock.Now(), snapshot.CapturedAt)
}

func TestSessionStateResetDropsSession(t *testing.T) {
	state := NewSessionState(testNetwork(), nil)
	session := state.Start(testAccount)

	state.Reset()

	assert.False(t, state.Session().Active())
	assert.False(t, state.PublishBalances(session.ID, eth(t, "1"), eth(t, "1")))
}

func TestSessionStatePublishBalancesStampsClockTime(t *testing.T) {
	clock := mocks.NewMockClock(t)
	refreshedAt := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(refreshedAt).Once()

	state := NewSessionState(testNetwork(), clock)
	session := state.Start(testAccount)

	require.True(t, state.PublishBalances(session.ID, eth(t, "1"), eth(t, "2")))
	assert.Equal(t, refreshedAt, state.Session().UpdatedAt)
}

func firstErr(_ domain.Session, err error) error {
	return err
}
