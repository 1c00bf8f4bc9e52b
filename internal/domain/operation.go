package domain

import (
	"fmt"
	"strings"
)

type OperationKind string

const (
	OperationDeposit  OperationKind = "deposit"
	OperationWithdraw OperationKind = "withdraw"
)

func (k OperationKind) Valid() bool {
	switch k {
	case OperationDeposit, OperationWithdraw:
		return true
	default:
		return false
	}
}

type OperationStatus string

const (
	StatusIdle                 OperationStatus = "idle"
	StatusValidating           OperationStatus = "validating"
	StatusAwaitingApproval     OperationStatus = "awaiting_approval"
	StatusAwaitingConfirmation OperationStatus = "awaiting_confirmation"
	StatusSucceeded            OperationStatus = "succeeded"
	StatusFailed               OperationStatus = "failed"
)

// InFlight reports whether a ledger interaction may still be outstanding.
func (s OperationStatus) InFlight() bool {
	switch s {
	case StatusValidating, StatusAwaitingApproval, StatusAwaitingConfirmation:
		return true
	default:
		return false
	}
}

func (s OperationStatus) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

func (s OperationStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

type TxHash string

// TxReceipt is the confirmation record of an included transaction.
type TxReceipt struct {
	Hash        TxHash
	BlockNumber uint64
	GasUsed     uint64
	Succeeded   bool
}

// PendingOperation is the state of the latest deposit or withdrawal.
type PendingOperation struct {
	Kind      OperationKind
	Input     string
	Status    OperationStatus
	Reason    string
	ErrorKind ErrorKind
	TxHashes  []TxHash
}

func NewPendingOperation(kind OperationKind) PendingOperation {
	return PendingOperation{Kind: kind, Status: StatusIdle}
}

// Fail moves the operation to Failed. The input is cleared and the reason is
// kept until ClearError or the next successful submission.
func (o *PendingOperation) Fail(err error) {
	o.Status = StatusFailed
	o.Input = ""
	o.ErrorKind = KindOf(err)
	o.Reason = ReasonOf(err)
	if strings.TrimSpace(o.Reason) == "" {
		o.Reason = fmt.Sprintf("%s failed", o.Kind)
	}
}

func (o *PendingOperation) Succeed() {
	o.Status = StatusSucceeded
	o.Input = ""
	o.Reason = ""
	o.ErrorKind = ""
}

// ClearError hides a previous failure, as focusing the input field does.
func (o *PendingOperation) ClearError() {
	o.Reason = ""
	o.ErrorKind = ""
	if o.Status == StatusFailed {
		o.Status = StatusIdle
	}
	if o.Status == StatusIdle && strings.TrimSpace(o.Input) == "0" {
		o.Input = ""
	}
}
