package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	contractweth "github.com/bnema/weth-cli/internal/adapters/contract/weth"
	"github.com/bnema/weth-cli/internal/adapters/ledger/ethrpc"
	"github.com/bnema/weth-cli/internal/adapters/prompt"
	statusadapter "github.com/bnema/weth-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/weth-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/weth-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/weth-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/weth-cli/internal/adapters/secrets/pass"
	"github.com/bnema/weth-cli/internal/adapters/wallet/keystore"
	"github.com/bnema/weth-cli/internal/application"
	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	config         *viper.Viper
	network        domain.Network
	repo           ports.AccountRepository
	secretStore    ports.SecretStore
	wallets        *application.WalletService
	logger         *zap.Logger
	statusRenderer func(application.Snapshot, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := loadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	network, err := networkFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire wallet repository: %w", err)
	}

	secretStore, err := newSecretStore(cfg.GetString(keySecretsBackend), secretsDir(cfg, homeDir))
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	return &app{
		config:         cfg,
		network:        network,
		repo:           repo,
		secretStore:    secretStore,
		wallets:        application.NewWalletService(repo, secretStore),
		logger:         zap.NewNop(),
		statusRenderer: statusadapter.Render,
		now:            time.Now,
	}, nil
}

func newSecretStore(backend, dir string) (ports.SecretStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "auto":
		return chainstore.NewPassFirstWithFileFallback(dir)
	case "pass":
		return passstore.NewStore(), nil
	case "file":
		return filestore.NewStore(dir), nil
	default:
		return nil, fmt.Errorf("unknown %s %q (want auto, pass or file)", keySecretsBackend, backend)
	}
}

// initLogger replaces the no-op logger once the command's stderr is known.
func (a *app) initLogger(w io.Writer, verbose bool) error {
	level := a.config.GetString(keyLogLevel)
	if verbose {
		level = "debug"
	}

	logger, err := newLogger(level, w)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

type sessionOptions struct {
	account  string
	yes      bool
	interval time.Duration
	in       io.Reader
	prompts  io.Writer
	onPoll   func(domain.Session, error)
}

// sessionRuntime is one connected session and everything bound to it.
type sessionRuntime struct {
	network  domain.Network
	account  domain.Account
	ledger   *ethrpc.Client
	state    *application.SessionState
	workflow *application.WrapWorkflow
	sessions *application.SessionService
}

func (r *sessionRuntime) Close() {
	r.sessions.Disconnect()
	r.ledger.Close()
}

// openSession dials the node and connects the selected wallet.
func (a *app) openSession(ctx context.Context, opts sessionOptions) (*sessionRuntime, error) {
	network := a.network
	if opts.interval > 0 {
		network.PollInterval = opts.interval
	}

	account, err := a.resolveAccount(ctx, opts.account)
	if err != nil {
		return nil, err
	}

	wallet := keystore.New(a.repo, a.secretStore).Restrict(account.ID)

	var prompter ports.Prompter = prompt.AutoApprove{}
	if !opts.yes {
		prompter = prompt.NewTerminal(opts.in, opts.prompts)
	}

	ledger, err := ethrpc.Dial(ctx, network, wallet, prompter, a.logger.Named("ledger"))
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", network.Name, err)
	}

	contract, err := contractweth.NewProxy(ledger, network, a.logger.Named("contract"))
	if err != nil {
		ledger.Close()
		return nil, err
	}

	state := application.NewSessionState(network, ports.SystemClock{})
	pollerOpts := []application.PollerOption{application.WithInterval(network.PollInterval)}
	if opts.onPoll != nil {
		pollerOpts = append(pollerOpts, application.WithRefreshHook(opts.onPoll))
	}
	poller := application.NewBalancePoller(ledger, contract, state, a.logger, pollerOpts...)

	runtime := &sessionRuntime{
		network:  network,
		account:  account,
		ledger:   ledger,
		state:    state,
		workflow: application.NewWrapWorkflow(state, contract, a.logger),
		sessions: application.NewSessionService(ledger, state, poller, a.logger),
	}

	if _, err := runtime.sessions.Connect(ctx, account.ID); err != nil {
		runtime.Close()
		return nil, err
	}

	return runtime, nil
}

// resolveAccount accepts an address or a wallet name. With no selector the
// only configured wallet is used.
func (a *app) resolveAccount(ctx context.Context, selector string) (domain.Account, error) {
	accounts, err := a.repo.List(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("list wallets: %w", err)
	}

	selector = strings.TrimSpace(selector)
	if selector == "" {
		switch len(accounts) {
		case 0:
			return domain.Account{}, fmt.Errorf("no wallets configured, run \"weth wallet import\" first: %w", domain.ErrAccountNotFound)
		case 1:
			return accounts[0], nil
		default:
			return domain.Account{}, fmt.Errorf("%d wallets configured, select one with --account", len(accounts))
		}
	}

	if id, err := domain.NewAccountID(selector); err == nil {
		return a.repo.GetByID(ctx, id)
	}

	for _, account := range accounts {
		if strings.EqualFold(strings.TrimSpace(account.Name), selector) {
			return account, nil
		}
	}

	return domain.Account{}, fmt.Errorf("wallet %q: %w", selector, domain.ErrAccountNotFound)
}
