package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrNoSession       = errors.New("no active session")

	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserRejected        = errors.New("user rejected transaction")
	ErrConnectionRejected  = errors.New("user rejected connection")
	ErrTransportFailure    = errors.New("ledger unavailable")
	ErrTransactionFailure  = errors.New("transaction failed")
	ErrAlreadyInProgress   = errors.New("operation already in progress")
	ErrTimeout             = errors.New("confirmation timed out")
)

type ErrorKind string

const (
	ErrorKindInvalidAmount       ErrorKind = "invalid_amount"
	ErrorKindInsufficientBalance ErrorKind = "insufficient_balance"
	ErrorKindUserRejected        ErrorKind = "user_rejected"
	ErrorKindConnectionRejected  ErrorKind = "connection_rejected"
	ErrorKindTransportFailure    ErrorKind = "transport_failure"
	ErrorKindTransactionFailure  ErrorKind = "transaction_failure"
	ErrorKindAlreadyInProgress   ErrorKind = "already_in_progress"
	ErrorKindTimeout             ErrorKind = "timeout"
)

var kindSentinels = map[ErrorKind]error{
	ErrorKindInvalidAmount:       ErrInvalidAmount,
	ErrorKindInsufficientBalance: ErrInsufficientBalance,
	ErrorKindUserRejected:        ErrUserRejected,
	ErrorKindConnectionRejected:  ErrConnectionRejected,
	ErrorKindTransportFailure:    ErrTransportFailure,
	ErrorKindTransactionFailure:  ErrTransactionFailure,
	ErrorKindAlreadyInProgress:   ErrAlreadyInProgress,
	ErrorKindTimeout:             ErrTimeout,
}

var kindPrecedence = []ErrorKind{
	ErrorKindUserRejected,
	ErrorKindConnectionRejected,
	ErrorKindTimeout,
	ErrorKindAlreadyInProgress,
	ErrorKindInvalidAmount,
	ErrorKindInsufficientBalance,
	ErrorKindTransportFailure,
	ErrorKindTransactionFailure,
}

// OperationError is the typed failure surfaced by ledger-facing operations.
// It matches both its kind's sentinel and the underlying cause with errors.Is.
type OperationError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func NewOperationError(kind ErrorKind, op string, err error) *OperationError {
	return &OperationError{Kind: kind, Op: op, Err: err}
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.sentinel())
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.sentinel(), e.Err)
}

func (e *OperationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}
	return []error{e.sentinel(), e.Err}
}

// Reason is the message shown next to a failed operation.
func (e *OperationError) Reason() string {
	switch e.Kind {
	case ErrorKindInvalidAmount, ErrorKindInsufficientBalance, ErrorKindUserRejected,
		ErrorKindConnectionRejected, ErrorKindAlreadyInProgress, ErrorKindTimeout:
		return e.sentinel().Error()
	}
	if e.Err == nil {
		return e.sentinel().Error()
	}
	cause := rootCause(e.Err)
	if errors.Is(cause, e.sentinel()) {
		return e.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", e.sentinel(), cause)
}

func (e *OperationError) sentinel() error {
	if sentinel, ok := kindSentinels[e.Kind]; ok {
		return sentinel
	}
	return ErrTransactionFailure
}

// KindOf classifies err, defaulting to TransactionFailure for anything
// unrecognised so that no failure goes without a kind.
func KindOf(err error) ErrorKind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	for _, kind := range kindPrecedence {
		if errors.Is(err, kindSentinels[kind]) {
			return kind
		}
	}
	return ErrorKindTransactionFailure
}

// ReasonOf returns a non-empty, user-facing reason for err.
func ReasonOf(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Reason()
	}
	return NewOperationError(KindOf(err), "", err).Reason()
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
