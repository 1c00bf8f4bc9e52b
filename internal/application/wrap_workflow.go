package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"go.uber.org/zap"
)

// WrapWorkflow drives deposits and withdrawals against the token contract.
//
// Balance checks use the cached session balances and are advisory; the ledger
// re-checks at submission time and a revert surfaces as TransactionFailure.
// Approval and withdrawal are separate transactions, so a withdrawal that was
// interrupted after its approval confirmed skips approval when retried.
type WrapWorkflow struct {
	state    *SessionState
	contract ports.TokenContract
	network  domain.Network
	logger   *zap.Logger
}

func NewWrapWorkflow(state *SessionState, contract ports.TokenContract, logger *zap.Logger) *WrapWorkflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WrapWorkflow{
		state:    state,
		contract: contract,
		network:  state.Network().WithDefaults(),
		logger:   logger.Named("workflow"),
	}
}

func (w *WrapWorkflow) Submit(ctx context.Context, cmd SubmitCommand) (domain.PendingOperation, error) {
	switch cmd.Kind {
	case domain.OperationDeposit:
		return w.Deposit(ctx, cmd.Input)
	case domain.OperationWithdraw:
		return w.Withdraw(ctx, cmd.Input)
	default:
		return domain.PendingOperation{}, fmt.Errorf("unsupported operation %q", cmd.Kind)
	}
}

// Deposit wraps input native units into the token.
func (w *WrapWorkflow) Deposit(ctx context.Context, input string) (domain.PendingOperation, error) {
	session, err := w.state.Begin(domain.OperationDeposit, input)
	if err != nil {
		return w.refused(domain.OperationDeposit, err)
	}

	amount, err := w.validate(domain.OperationDeposit, session, input)
	if err != nil {
		return w.fail(domain.OperationDeposit, err)
	}

	ctx, cancel := context.WithTimeout(ctx, w.network.ConfirmTimeout)
	defer cancel()

	w.transition(domain.OperationDeposit, domain.StatusAwaitingConfirmation)
	receipt, err := w.contract.Deposit(ctx, session.AccountID, amount)
	w.state.RecordTx(domain.OperationDeposit, receipt.Hash)
	if err != nil {
		return w.fail(domain.OperationDeposit, err)
	}

	return w.succeed(session, domain.OperationDeposit, amount, receipt)
}

// Withdraw unwraps input token units, approving the contract first when the
// current allowance does not cover the amount.
func (w *WrapWorkflow) Withdraw(ctx context.Context, input string) (domain.PendingOperation, error) {
	session, err := w.state.Begin(domain.OperationWithdraw, input)
	if err != nil {
		return w.refused(domain.OperationWithdraw, err)
	}

	amount, err := w.validate(domain.OperationWithdraw, session, input)
	if err != nil {
		return w.fail(domain.OperationWithdraw, err)
	}

	ctx, cancel := context.WithTimeout(ctx, w.network.ConfirmTimeout)
	defer cancel()

	spender := w.contract.Address()
	allowance, err := w.contract.Allowance(ctx, session.AccountID, spender)
	if err != nil {
		return w.fail(domain.OperationWithdraw, err)
	}

	if allowance.Sub(amount).Sign() < 0 {
		w.transition(domain.OperationWithdraw, domain.StatusAwaitingApproval)
		approval, err := w.contract.Approve(ctx, session.AccountID, spender, w.network.MaxApproval)
		w.state.RecordTx(domain.OperationWithdraw, approval.Hash)
		if err != nil {
			return w.fail(domain.OperationWithdraw, err)
		}
		w.logger.Debug("approval confirmed",
			zap.String("tx_hash", string(approval.Hash)),
			zap.Uint64("block", approval.BlockNumber),
		)
	}

	w.transition(domain.OperationWithdraw, domain.StatusAwaitingConfirmation)
	receipt, err := w.contract.Withdraw(ctx, session.AccountID, amount)
	w.state.RecordTx(domain.OperationWithdraw, receipt.Hash)
	if err != nil {
		return w.fail(domain.OperationWithdraw, err)
	}

	return w.succeed(session, domain.OperationWithdraw, amount, receipt)
}

// ClearError hides the last failure of kind, as focusing the input does.
func (w *WrapWorkflow) ClearError(kind domain.OperationKind) {
	w.state.ClearError(kind)
}

// validate is the local guard run before any ledger call.
func (w *WrapWorkflow) validate(kind domain.OperationKind, session domain.Session, input string) (domain.Amount, error) {
	amount, err := domain.ParseAmount(input, w.network.Decimals)
	if err != nil {
		return domain.Amount{}, domain.NewOperationError(domain.ErrorKindInvalidAmount, string(kind), err)
	}

	balance := session.Balance(kind)
	if amount.Cmp(balance) > 0 {
		return domain.Amount{}, domain.NewOperationError(domain.ErrorKindInsufficientBalance, string(kind),
			fmt.Errorf("%s exceeds cached balance %s", amount.Display(w.network.Decimals), balance.Display(w.network.Decimals)))
	}

	return amount, nil
}

// refused reports a submission that could not claim the operation slot. The
// running or previous operation is left as it was.
func (w *WrapWorkflow) refused(kind domain.OperationKind, err error) (domain.PendingOperation, error) {
	w.logger.Debug("submission refused", zap.String("operation", string(kind)), zap.Error(err))
	return w.state.Operation(kind), err
}

func (w *WrapWorkflow) fail(kind domain.OperationKind, err error) (domain.PendingOperation, error) {
	err = classify(kind, err)
	op := w.state.Fail(kind, err)

	w.logger.Warn("operation failed",
		zap.String("operation", string(kind)),
		zap.String("kind", string(op.ErrorKind)),
		zap.String("reason", op.Reason),
		zap.Error(err),
	)

	return op, err
}

func (w *WrapWorkflow) succeed(session domain.Session, kind domain.OperationKind, amount domain.Amount, receipt domain.TxReceipt) (domain.PendingOperation, error) {
	op := w.state.Succeed(session.ID, kind, amount)

	w.logger.Info("operation confirmed",
		zap.String("operation", string(kind)),
		zap.String("amount", amount.Display(w.network.Decimals)),
		zap.String("tx_hash", string(receipt.Hash)),
		zap.Uint64("block", receipt.BlockNumber),
	)

	return op, nil
}

func (w *WrapWorkflow) transition(kind domain.OperationKind, status domain.OperationStatus) {
	w.state.SetStatus(kind, status)
	w.logger.Debug("operation status", zap.String("operation", string(kind)), zap.String("status", string(status)))
}

// classify makes sure every failure leaving the workflow carries a kind.
func classify(kind domain.OperationKind, err error) error {
	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewOperationError(domain.ErrorKindTimeout, string(kind), err)
	}
	return domain.NewOperationError(domain.KindOf(err), string(kind), err)
}
