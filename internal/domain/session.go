package domain

import "time"

type SessionID string

// Session is the in-memory state of one connected account.
type Session struct {
	ID            SessionID
	AccountID     AccountID
	NativeBalance Amount
	TokenBalance  Amount
	UpdatedAt     time.Time
}

func (s Session) Active() bool {
	return s.ID != "" && s.AccountID != ""
}

// Balance returns the cached balance an operation of kind spends from.
func (s Session) Balance(kind OperationKind) Amount {
	if kind == OperationWithdraw {
		return s.TokenBalance
	}
	return s.NativeBalance
}

// Apply adjusts cached balances after a confirmed wrap or unwrap.
func (s *Session) Apply(kind OperationKind, amount Amount) {
	switch kind {
	case OperationDeposit:
		s.NativeBalance = s.NativeBalance.Sub(amount)
		s.TokenBalance = s.TokenBalance.Add(amount)
	case OperationWithdraw:
		s.TokenBalance = s.TokenBalance.Sub(amount)
		s.NativeBalance = s.NativeBalance.Add(amount)
	}
	if s.NativeBalance.Sign() < 0 {
		s.NativeBalance = ZeroAmount()
	}
	if s.TokenBalance.Sign() < 0 {
		s.TokenBalance = ZeroAmount()
	}
}

// IsStale reports whether balances were last refreshed more than maxAge ago.
func (s Session) IsStale(now time.Time, maxAge time.Duration) bool {
	if s.UpdatedAt.IsZero() {
		return true
	}
	if maxAge <= 0 {
		return false
	}
	return now.Sub(s.UpdatedAt) > maxAge
}
