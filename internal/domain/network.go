package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	DefaultGasLimit       uint64 = 300_000
	DefaultPollInterval          = 3 * time.Second
	DefaultConfirmTimeout        = 2 * time.Minute
)

// Network is the ledger and token contract the session talks to.
type Network struct {
	Name           string
	RPCURL         string
	ChainID        *big.Int
	TokenAddress   AccountID
	TokenSymbol    string
	Decimals       int32
	MaxApproval    Amount
	GasLimit       uint64
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

func (n Network) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return fmt.Errorf("network name is required")
	}
	if strings.TrimSpace(n.RPCURL) == "" {
		return fmt.Errorf("rpc url is required")
	}
	if n.ChainID == nil || n.ChainID.Sign() <= 0 {
		return fmt.Errorf("chain id must be positive")
	}
	if _, err := NewAccountID(string(n.TokenAddress)); err != nil {
		return fmt.Errorf("token address: %w", err)
	}
	if n.Decimals < 0 || n.Decimals > 77 {
		return fmt.Errorf("unsupported token decimals %d", n.Decimals)
	}
	if n.MaxApproval.Sign() <= 0 {
		return fmt.Errorf("max approval must be positive")
	}
	if n.GasLimit == 0 {
		return fmt.Errorf("gas limit is required")
	}
	return nil
}

// WithDefaults fills unset tunables with the values the wrapper has always used.
func (n Network) WithDefaults() Network {
	if n.Decimals == 0 {
		n.Decimals = DefaultDecimals
	}
	if n.TokenSymbol == "" {
		n.TokenSymbol = "WETH"
	}
	if n.MaxApproval.IsZero() {
		n.MaxApproval = MaxUint256()
	}
	if n.GasLimit == 0 {
		n.GasLimit = DefaultGasLimit
	}
	if n.PollInterval <= 0 {
		n.PollInterval = DefaultPollInterval
	}
	if n.ConfirmTimeout <= 0 {
		n.ConfirmTimeout = DefaultConfirmTimeout
	}
	return n
}
