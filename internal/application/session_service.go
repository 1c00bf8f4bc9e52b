package application

import (
	"context"
	"fmt"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"go.uber.org/zap"
)

// SessionService ties the session lifecycle to the wallet connection: a
// session exists between a successful Connect and the next Disconnect, and
// the poller only runs inside it.
type SessionService struct {
	ledger ports.LedgerClient
	state  *SessionState
	poller *BalancePoller
	logger *zap.Logger
}

func NewSessionService(ledger ports.LedgerClient, state *SessionState, poller *BalancePoller, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionService{ledger: ledger, state: state, poller: poller, logger: logger.Named("session")}
}

// Connect asks the wallet for its accounts and opens a session for preferred,
// or for the first account when preferred is empty. Balances are refreshed
// once; a failed first refresh leaves the session open with stale balances.
func (s *SessionService) Connect(ctx context.Context, preferred domain.AccountID) (domain.Session, error) {
	s.Disconnect()

	accounts, err := s.ledger.RequestAccounts(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("request accounts: %w", err)
	}

	account, err := pickAccount(accounts, preferred)
	if err != nil {
		return domain.Session{}, err
	}

	session := s.state.Start(account)
	s.logger.Debug("session started",
		zap.String("session", string(session.ID)),
		zap.String("account", string(account)),
	)

	if err := s.poller.RefreshOnce(ctx, session); err != nil {
		s.logger.Warn("initial balance refresh failed", zap.Error(err))
	}

	return s.state.Session(), nil
}

// Watch starts periodic refreshes for the active session.
func (s *SessionService) Watch(ctx context.Context) error {
	session := s.state.Session()
	if !session.Active() {
		return domain.ErrNoSession
	}
	return s.poller.Start(ctx, session)
}

// Disconnect stops the poller before dropping the session.
func (s *SessionService) Disconnect() {
	s.poller.Stop()
	if session := s.state.Session(); session.Active() {
		s.logger.Debug("session ended", zap.String("session", string(session.ID)))
	}
	s.state.Reset()
}

func (s *SessionService) Snapshot() Snapshot {
	return s.state.Snapshot()
}

func pickAccount(accounts []domain.AccountID, preferred domain.AccountID) (domain.AccountID, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("wallet exposed no accounts: %w", domain.ErrAccountNotFound)
	}
	if preferred == "" {
		return accounts[0], nil
	}

	for _, account := range accounts {
		if account.Address() == preferred.Address() {
			return account, nil
		}
	}

	return "", fmt.Errorf("account %s: %w", preferred, domain.ErrAccountNotFound)
}
