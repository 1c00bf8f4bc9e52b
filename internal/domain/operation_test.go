package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationStatusPredicates(t *testing.T) {
	tests := []struct {
		status   OperationStatus
		inFlight bool
		terminal bool
		label    string
	}{
		{status: StatusIdle, label: "idle"},
		{status: StatusValidating, inFlight: true, label: "validating"},
		{status: StatusAwaitingApproval, inFlight: true, label: "awaiting approval"},
		{status: StatusAwaitingConfirmation, inFlight: true, label: "awaiting confirmation"},
		{status: StatusSucceeded, terminal: true, label: "succeeded"},
		{status: StatusFailed, terminal: true, label: "failed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.inFlight, tt.status.InFlight())
			assert.Equal(t, tt.terminal, tt.status.Terminal())
			assert.Equal(t, tt.label, tt.status.Label())
		})
	}
}

func TestOperationKindValid(t *testing.T) {
	assert.True(t, OperationDeposit.Valid())
	assert.True(t, OperationWithdraw.Valid())
	assert.False(t, OperationKind("transfer").Valid())
}

func TestPendingOperationFailKeepsReasonUntilCleared(t *testing.T) {
	op := NewPendingOperation(OperationWithdraw)
	op.Input = "1.5"

	op.Fail(NewOperationError(ErrorKindUserRejected, "approve", errors.New("declined")))

	assert.Equal(t, StatusFailed, op.Status)
	assert.Empty(t, op.Input)
	assert.Equal(t, ErrorKindUserRejected, op.ErrorKind)
	assert.Equal(t, "user rejected transaction", op.Reason)

	op.ClearError()
	assert.Equal(t, StatusIdle, op.Status)
	assert.Empty(t, op.Reason)
	assert.Empty(t, op.ErrorKind)
}

func TestPendingOperationSucceedClearsPreviousFailure(t *testing.T) {
	op := NewPendingOperation(OperationDeposit)
	op.Fail(ErrInsufficientBalance)
	op.Input = "1"

	op.Succeed()

	assert.Equal(t, StatusSucceeded, op.Status)
	assert.Empty(t, op.Input)
	assert.Empty(t, op.Reason)
}

func TestPendingOperationClearErrorDropsZeroInput(t *testing.T) {
	op := NewPendingOperation(OperationDeposit)
	op.Input = "0"

	op.ClearError()
	assert.Empty(t, op.Input)

	op.Input = "0.1"
	op.ClearError()
	assert.Equal(t, "0.1", op.Input)
}
