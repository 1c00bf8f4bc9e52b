package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"go.uber.org/zap"
)

// BalancePoller refreshes the cached balances of one session on a fixed
// interval. Each run is bound to the session it was started for; Stop waits
// for the loop to exit so nothing refreshes after it returns.
type BalancePoller struct {
	ledger   ports.LedgerClient
	contract ports.TokenContract
	state    *SessionState
	tickers  ports.TickerFactory
	interval time.Duration
	logger   *zap.Logger

	onRefresh func(domain.Session, error)
	failures  atomic.Int64

	// lifecycle serialises Start and Stop so a run is always replaced whole.
	lifecycle sync.Mutex

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running domain.SessionID
}

type PollerOption func(*BalancePoller)

func WithTickerFactory(factory ports.TickerFactory) PollerOption {
	return func(p *BalancePoller) {
		p.tickers = factory
	}
}

func WithInterval(interval time.Duration) PollerOption {
	return func(p *BalancePoller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithRefreshHook is called from the poll loop after every attempt.
func WithRefreshHook(hook func(domain.Session, error)) PollerOption {
	return func(p *BalancePoller) {
		p.onRefresh = hook
	}
}

func NewBalancePoller(ledger ports.LedgerClient, contract ports.TokenContract, state *SessionState, logger *zap.Logger, opts ...PollerOption) *BalancePoller {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &BalancePoller{
		ledger:   ledger,
		contract: contract,
		state:    state,
		tickers:  ports.SystemTickerFactory{},
		interval: state.Network().WithDefaults().PollInterval,
		logger:   logger.Named("poller"),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start begins polling for session, stopping any previous run first.
func (p *BalancePoller) Start(ctx context.Context, session domain.Session) error {
	if !session.Active() {
		return domain.ErrNoSession
	}

	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.stop()

	p.mu.Lock()
	defer p.mu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := p.tickers.NewTicker(p.interval)

	p.cancel = cancel
	p.done = done
	p.running = session.ID

	go p.loop(loopCtx, session, ticker, done)

	p.logger.Debug("poller started",
		zap.String("session", string(session.ID)),
		zap.Duration("interval", p.interval),
	)
	return nil
}

// Stop cancels the current run and blocks until its loop has returned.
func (p *BalancePoller) Stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	p.stop()
}

func (p *BalancePoller) stop() {
	p.mu.Lock()
	cancel, done, id := p.cancel, p.done, p.running
	p.cancel, p.done, p.running = nil, nil, ""
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	p.logger.Debug("poller stopped", zap.String("session", string(id)))
}

func (p *BalancePoller) Running() domain.SessionID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Failures counts refresh attempts that did not publish.
func (p *BalancePoller) Failures() int64 {
	return p.failures.Load()
}

// RefreshOnce reads both balances and publishes them into session.
func (p *BalancePoller) RefreshOnce(ctx context.Context, session domain.Session) error {
	if !session.Active() {
		return domain.ErrNoSession
	}

	native, nativeErr := p.ledger.GetBalance(ctx, session.AccountID)
	if nativeErr != nil {
		nativeErr = fmt.Errorf("get native balance: %w", nativeErr)
	}
	token, tokenErr := p.contract.BalanceOf(ctx, session.AccountID)
	if tokenErr != nil {
		tokenErr = fmt.Errorf("get token balance: %w", tokenErr)
	}
	if err := errors.Join(nativeErr, tokenErr); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.state.PublishBalances(session.ID, native, token) {
		return domain.ErrNoSession
	}

	return nil
}

func (p *BalancePoller) loop(ctx context.Context, session domain.Session, ticker ports.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if ctx.Err() != nil {
				return
			}
			p.tick(ctx, session)
		}
	}
}

func (p *BalancePoller) tick(ctx context.Context, session domain.Session) {
	err := p.RefreshOnce(ctx, session)
	if err != nil && ctx.Err() == nil {
		p.failures.Add(1)
		p.logger.Warn("balance refresh failed",
			zap.String("session", string(session.ID)),
			zap.String("account", string(session.AccountID)),
			zap.Error(err),
		)
	}

	if p.onRefresh != nil && ctx.Err() == nil {
		p.onRefresh(p.state.Session(), err)
	}
}
