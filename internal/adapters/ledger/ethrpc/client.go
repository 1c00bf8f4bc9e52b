package ethrpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const defaultReceiptPollInterval = 2 * time.Second

// backend is the subset of *ethclient.Client the adapter needs.
type backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type Client struct {
	backend             backend
	wallet              ports.Wallet
	prompter            ports.Prompter
	network             domain.Network
	logger              *zap.Logger
	receiptPollInterval time.Duration
	close               func()
}

var _ ports.LedgerClient = (*Client)(nil)

type Option func(*Client)

func WithReceiptPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.receiptPollInterval = interval
		}
	}
}

// Dial connects to the network's RPC endpoint and checks that the node serves
// the configured chain.
func Dial(ctx context.Context, network domain.Network, wallet ports.Wallet, prompter ports.Prompter, logger *zap.Logger, opts ...Option) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, domain.NewOperationError(domain.ErrorKindTransportFailure, "dial", err)
	}

	client, err := newClient(ctx, rpc, network, wallet, prompter, logger, opts...)
	if err != nil {
		rpc.Close()
		return nil, err
	}
	client.close = rpc.Close

	return client, nil
}

func newClient(ctx context.Context, b backend, network domain.Network, wallet ports.Wallet, prompter ports.Prompter, logger *zap.Logger, opts ...Option) (*Client, error) {
	if wallet == nil {
		return nil, errors.New("wallet is nil")
	}
	if prompter == nil {
		return nil, errors.New("prompter is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	chainID, err := b.ChainID(ctx)
	if err != nil {
		return nil, domain.NewOperationError(domain.ErrorKindTransportFailure, "chain id", err)
	}
	if network.ChainID != nil && chainID.Cmp(network.ChainID) != 0 {
		return nil, fmt.Errorf("rpc endpoint serves chain %s, %s expects %s", chainID, network.Name, network.ChainID)
	}
	network.ChainID = chainID

	client := &Client{
		backend:             b,
		wallet:              wallet,
		prompter:            prompter,
		network:             network,
		logger:              logger,
		receiptPollInterval: defaultReceiptPollInterval,
		close:               func() {},
	}
	for _, opt := range opts {
		opt(client)
	}

	logger.Info("ledger client initialized",
		zap.String("network", network.Name),
		zap.String("chain_id", chainID.String()))

	return client, nil
}

func (c *Client) Close() {
	c.close()
}

// RequestAccounts exposes the wallet's accounts after the user agrees to
// connect them.
func (c *Client) RequestAccounts(ctx context.Context) ([]domain.AccountID, error) {
	accounts, err := c.wallet.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wallet accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("request accounts: %w", domain.ErrAccountNotFound)
	}

	names := make([]string, 0, len(accounts))
	for _, account := range accounts {
		names = append(names, string(account))
	}
	question := fmt.Sprintf("Connect %s to %s?", strings.Join(names, ", "), c.network.Name)

	ok, err := c.prompter.Confirm(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("confirm connection: %w", err)
	}
	if !ok {
		return nil, domain.NewOperationError(domain.ErrorKindConnectionRejected, "request accounts", nil)
	}

	return accounts, nil
}

func (c *Client) GetBalance(ctx context.Context, account domain.AccountID) (domain.Amount, error) {
	balance, err := c.backend.BalanceAt(ctx, account.Address(), nil)
	if err != nil {
		return domain.Amount{}, domain.NewOperationError(domain.ErrorKindTransportFailure, "get balance", err)
	}

	return domain.NewAmount(balance), nil
}

func (c *Client) Call(ctx context.Context, req ports.CallRequest) ([]byte, error) {
	to := req.To.Address()
	result, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &to, Data: req.Data}, nil)
	if err != nil {
		return nil, domain.NewOperationError(domain.ErrorKindTransportFailure, "call contract", err)
	}

	return result, nil
}

// Send asks the user to confirm, signs with the wallet and broadcasts. It
// returns once the node accepted the transaction.
func (c *Client) Send(ctx context.Context, req ports.SendRequest) (domain.TxHash, error) {
	if req.GasLimit == 0 {
		return "", fmt.Errorf("send: gas limit is required")
	}

	question := req.Summary
	if question == "" {
		question = fmt.Sprintf("Send transaction from %s to %s", req.From, req.To)
	}
	ok, err := c.prompter.Confirm(ctx, fmt.Sprintf("%s (gas limit %d)?", question, req.GasLimit))
	if err != nil {
		return "", fmt.Errorf("confirm transaction: %w", err)
	}
	if !ok {
		return "", domain.NewOperationError(domain.ErrorKindUserRejected, "send", nil)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, req.From.Address())
	if err != nil {
		return "", fmt.Errorf("get nonce: %w", err)
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("get gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, req.To.Address(), req.Value.BigInt(), req.GasLimit, gasPrice, req.Data)

	signed, err := c.wallet.SignTx(ctx, req.From, tx, c.network.ChainID)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	hash := domain.TxHash(signed.Hash().Hex())
	c.logger.Info("transaction sent",
		zap.String("tx_hash", string(hash)),
		zap.String("from", string(req.From)),
		zap.String("to", string(req.To)),
		zap.String("value", req.Value.String()),
		zap.Uint64("gas_limit", req.GasLimit))

	return hash, nil
}

// WaitReceipt polls until the transaction is included or ctx ends. Transient
// node errors are logged and retried.
func (c *Client) WaitReceipt(ctx context.Context, hash domain.TxHash) (domain.TxReceipt, error) {
	txHash := common.HexToHash(string(hash))
	ticker := time.NewTicker(c.receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			result := domain.TxReceipt{
				Hash:      hash,
				GasUsed:   receipt.GasUsed,
				Succeeded: receipt.Status == types.ReceiptStatusSuccessful,
			}
			if receipt.BlockNumber != nil {
				result.BlockNumber = receipt.BlockNumber.Uint64()
			}
			c.logger.Info("transaction mined",
				zap.String("tx_hash", string(hash)),
				zap.Uint64("block", result.BlockNumber),
				zap.Bool("succeeded", result.Succeeded))
			return result, nil
		case errors.Is(err, ethereum.NotFound):
		case ctx.Err() != nil:
		default:
			c.logger.Warn("receipt lookup failed",
				zap.String("tx_hash", string(hash)),
				zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return domain.TxReceipt{Hash: hash}, fmt.Errorf("wait for receipt %s: %w", hash, ctx.Err())
		case <-ticker.C:
		}
	}
}
