package application

import (
	"sync"
	"time"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"github.com/google/uuid"
)

// SessionState owns the connected account, its cached balances and the
// latest deposit and withdrawal. It is safe for concurrent use by the
// workflow and the poller; between the two the last writer wins.
type SessionState struct {
	mu      sync.RWMutex
	network domain.Network
	clock   ports.Clock
	session domain.Session
	ops     map[domain.OperationKind]*domain.PendingOperation
}

func NewSessionState(network domain.Network, clock ports.Clock) *SessionState {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &SessionState{network: network, clock: clock}
	s.resetOperations()
	return s
}

func (s *SessionState) resetOperations() {
	s.ops = map[domain.OperationKind]*domain.PendingOperation{}
	for _, kind := range []domain.OperationKind{domain.OperationDeposit, domain.OperationWithdraw} {
		op := domain.NewPendingOperation(kind)
		s.ops[kind] = &op
	}
}

// Start replaces any previous session with a fresh one for account.
func (s *SessionState) Start(account domain.AccountID) domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{
		ID:        domain.SessionID(uuid.NewString()),
		AccountID: account,
	}
	s.resetOperations()
	return s.session
}

func (s *SessionState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
	s.resetOperations()
}

func (s *SessionState) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *SessionState) Network() domain.Network {
	return s.network
}

// Begin claims the operation slot for kind. A second submission while one is
// in flight is rejected without touching the running operation.
func (s *SessionState) Begin(kind domain.OperationKind, input string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Active() {
		return domain.Session{}, domain.ErrNoSession
	}

	op := s.ops[kind]
	if op.Status.InFlight() {
		return domain.Session{}, domain.NewOperationError(domain.ErrorKindAlreadyInProgress, string(kind), nil)
	}

	// A previous failure reason stays visible until this run succeeds or the
	// error is cleared.
	op.Input = input
	op.Status = domain.StatusValidating
	op.TxHashes = nil

	return s.session, nil
}

func (s *SessionState) SetStatus(kind domain.OperationKind, status domain.OperationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[kind].Status = status
}

func (s *SessionState) RecordTx(kind domain.OperationKind, hash domain.TxHash) {
	if hash == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[kind].TxHashes = append(s.ops[kind].TxHashes, hash)
}

func (s *SessionState) Fail(kind domain.OperationKind, err error) domain.PendingOperation {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := s.ops[kind]
	op.Fail(err)
	return cloneOperation(*op)
}

// Succeed completes the operation and, if sessionID is still the active
// session, credits the confirmed amount to the cached balances.
func (s *SessionState) Succeed(sessionID domain.SessionID, kind domain.OperationKind, amount domain.Amount) domain.PendingOperation {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := s.ops[kind]
	op.Succeed()
	if s.session.ID == sessionID {
		s.session.Apply(kind, amount)
	}
	return cloneOperation(*op)
}

// PublishBalances stores a refresh result. Results for a session that is no
// longer active are dropped and false is returned.
func (s *SessionState) PublishBalances(sessionID domain.SessionID, native, token domain.Amount) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Active() || s.session.ID != sessionID {
		return false
	}

	s.session.NativeBalance = native
	s.session.TokenBalance = token
	s.session.UpdatedAt = s.clock.Now()
	return true
}

func (s *SessionState) ClearError(kind domain.OperationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[kind].ClearError()
}

func (s *SessionState) Operation(kind domain.OperationKind) domain.PendingOperation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOperation(*s.ops[kind])
}

// Snapshot is a consistent copy for rendering. Balances older than three
// poll intervals are flagged stale.
func (s *SessionState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock.Now()
	return Snapshot{
		Network:    s.network,
		Session:    s.session,
		Deposit:    cloneOperation(*s.ops[domain.OperationDeposit]),
		Withdraw:   cloneOperation(*s.ops[domain.OperationWithdraw]),
		Stale:      s.session.Active() && s.session.IsStale(now, staleAfter(s.network.PollInterval)),
		CapturedAt: now,
	}
}

func staleAfter(interval time.Duration) time.Duration {
	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}
	return 3 * interval
}

func cloneOperation(op domain.PendingOperation) domain.PendingOperation {
	if op.TxHashes != nil {
		op.TxHashes = append([]domain.TxHash(nil), op.TxHashes...)
	}
	return op
}
