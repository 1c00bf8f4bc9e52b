package weth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"
)

// Proxy exposes the wrapped-token contract as typed calls over a LedgerClient.
type Proxy struct {
	ledger   ports.LedgerClient
	address  domain.AccountID
	abi      abi.ABI
	gasLimit uint64
	decimals int32
	symbol   string
	logger   *zap.Logger
}

var _ ports.TokenContract = (*Proxy)(nil)

func NewProxy(ledger ports.LedgerClient, network domain.Network, logger *zap.Logger) (*Proxy, error) {
	if ledger == nil {
		return nil, errors.New("ledger client is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	network = network.WithDefaults()

	address, err := domain.NewAccountID(string(network.TokenAddress))
	if err != nil {
		return nil, fmt.Errorf("token contract address: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(wethABI))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}

	return &Proxy{
		ledger:   ledger,
		address:  address,
		abi:      parsed,
		gasLimit: network.GasLimit,
		decimals: network.Decimals,
		symbol:   network.TokenSymbol,
		logger:   logger,
	}, nil
}

func (p *Proxy) Address() domain.AccountID {
	return p.address
}

func (p *Proxy) BalanceOf(ctx context.Context, account domain.AccountID) (domain.Amount, error) {
	return p.callUint256(ctx, "balanceOf", account.Address())
}

func (p *Proxy) Allowance(ctx context.Context, owner, spender domain.AccountID) (domain.Amount, error) {
	return p.callUint256(ctx, "allowance", owner.Address(), spender.Address())
}

func (p *Proxy) Approve(ctx context.Context, from, spender domain.AccountID, amount domain.Amount) (domain.TxReceipt, error) {
	summary := fmt.Sprintf("Approve %s to spend %s %s from %s", spender.Short(), p.describe(amount), p.symbol, from.Short())
	return p.send(ctx, "approve", from, domain.ZeroAmount(), summary, spender.Address(), amount.BigInt())
}

func (p *Proxy) Deposit(ctx context.Context, from domain.AccountID, amount domain.Amount) (domain.TxReceipt, error) {
	summary := fmt.Sprintf("Wrap %s into %s for %s", amount.Display(p.decimals), p.symbol, from.Short())
	return p.send(ctx, "deposit", from, amount, summary)
}

func (p *Proxy) Withdraw(ctx context.Context, from domain.AccountID, amount domain.Amount) (domain.TxReceipt, error) {
	summary := fmt.Sprintf("Unwrap %s %s for %s", amount.Display(p.decimals), p.symbol, from.Short())
	return p.send(ctx, "withdraw", from, domain.ZeroAmount(), summary, amount.BigInt())
}

func (p *Proxy) callUint256(ctx context.Context, method string, args ...interface{}) (domain.Amount, error) {
	data, err := p.abi.Pack(method, args...)
	if err != nil {
		return domain.Amount{}, fmt.Errorf("pack %s: %w", method, err)
	}

	result, err := p.ledger.Call(ctx, ports.CallRequest{To: p.address, Data: data})
	if err != nil {
		return domain.Amount{}, asTransportFailure(method, err)
	}

	// An empty result means the account never interacted with the token.
	if len(result) == 0 {
		return domain.ZeroAmount(), nil
	}

	var value *big.Int
	if err := p.abi.UnpackIntoInterface(&value, method, result); err != nil {
		return domain.Amount{}, domain.NewOperationError(domain.ErrorKindTransportFailure, method, fmt.Errorf("unpack result: %w", err))
	}

	return domain.NewAmount(value), nil
}

func (p *Proxy) send(ctx context.Context, method string, from domain.AccountID, value domain.Amount, summary string, args ...interface{}) (domain.TxReceipt, error) {
	data, err := p.abi.Pack(method, args...)
	if err != nil {
		return domain.TxReceipt{}, fmt.Errorf("pack %s: %w", method, err)
	}

	hash, err := p.ledger.Send(ctx, ports.SendRequest{
		From:     from,
		To:       p.address,
		Data:     data,
		Value:    value,
		GasLimit: p.gasLimit,
		Summary:  summary,
	})
	if err != nil {
		return domain.TxReceipt{}, asSendFailure(method, err)
	}

	p.logger.Debug("token transaction submitted",
		zap.String("method", method),
		zap.String("tx_hash", string(hash)),
		zap.String("from", string(from)))

	receipt, err := p.ledger.WaitReceipt(ctx, hash)
	if err != nil {
		return domain.TxReceipt{Hash: hash}, asSendFailure(method, err)
	}
	if !receipt.Succeeded {
		return receipt, domain.NewOperationError(domain.ErrorKindTransactionFailure, method,
			fmt.Errorf("transaction %s reverted in block %d", hash, receipt.BlockNumber))
	}

	return receipt, nil
}

func (p *Proxy) describe(amount domain.Amount) string {
	if amount.Cmp(domain.MaxUint256()) == 0 {
		return "unlimited"
	}
	return amount.Display(p.decimals)
}

func asTransportFailure(method string, err error) error {
	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		return err
	}
	return domain.NewOperationError(domain.ErrorKindTransportFailure, method, err)
}

// asSendFailure keeps typed wallet and timeout outcomes and classifies
// everything else as a failed transaction.
func asSendFailure(method string, err error) error {
	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrUserRejected):
		return domain.NewOperationError(domain.ErrorKindUserRejected, method, err)
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewOperationError(domain.ErrorKindTimeout, method, err)
	default:
		return domain.NewOperationError(domain.ErrorKindTransactionFailure, method, err)
	}
}
