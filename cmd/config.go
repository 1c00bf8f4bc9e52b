package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configDir    = ".weth"
	configName   = "config"
	configType   = "toml"
	envPrefix    = "WETH"
	configEnvVar = "WETH_CONFIG"
)

const (
	keyNetworkName    = "network.name"
	keyNetworkRPCURL  = "network.rpc_url"
	keyNetworkChainID = "network.chain_id"
	keyTokenAddress   = "token.address"
	keyTokenSymbol    = "token.symbol"
	keyTokenDecimals  = "token.decimals"
	keyMaxApproval    = "token.max_approval"
	keyGasLimit       = "tx.gas_limit"
	keyConfirmTimeout = "tx.confirm_timeout"
	keyPollInterval   = "poll.interval"
	keySecretsDir     = "secrets.dir"
	keySecretsBackend = "secrets.backend"
	keyLogLevel       = "log.level"
)

func setConfigDefaults(cfg *viper.Viper) {
	cfg.SetDefault(keyNetworkName, "sepolia")
	cfg.SetDefault(keyNetworkRPCURL, "https://rpc.sepolia.org")
	cfg.SetDefault(keyNetworkChainID, "11155111")
	cfg.SetDefault(keyTokenAddress, "0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14")
	cfg.SetDefault(keyTokenSymbol, "WETH")
	cfg.SetDefault(keyTokenDecimals, domain.DefaultDecimals)
	cfg.SetDefault(keyMaxApproval, "")
	cfg.SetDefault(keyGasLimit, domain.DefaultGasLimit)
	cfg.SetDefault(keyConfirmTimeout, domain.DefaultConfirmTimeout)
	cfg.SetDefault(keyPollInterval, domain.DefaultPollInterval)
	cfg.SetDefault(keySecretsBackend, "auto")
	cfg.SetDefault(keyLogLevel, "warn")
}

// loadConfig reads ~/.weth/config.toml (or $WETH_CONFIG), a .env file in the
// working directory, and WETH_* environment overrides.
func loadConfig(homeDir string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := viper.New()
	setConfigDefaults(cfg)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if path := os.Getenv(configEnvVar); path != "" {
		cfg.SetConfigFile(path)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func networkFromConfig(cfg *viper.Viper) (domain.Network, error) {
	chainID, ok := new(big.Int).SetString(strings.TrimSpace(cfg.GetString(keyNetworkChainID)), 10)
	if !ok {
		return domain.Network{}, fmt.Errorf("invalid %s %q", keyNetworkChainID, cfg.GetString(keyNetworkChainID))
	}

	network := domain.Network{
		Name:           cfg.GetString(keyNetworkName),
		RPCURL:         cfg.GetString(keyNetworkRPCURL),
		ChainID:        chainID,
		TokenAddress:   domain.AccountID(cfg.GetString(keyTokenAddress)),
		TokenSymbol:    cfg.GetString(keyTokenSymbol),
		Decimals:       cfg.GetInt32(keyTokenDecimals),
		GasLimit:       cfg.GetUint64(keyGasLimit),
		ConfirmTimeout: cfg.GetDuration(keyConfirmTimeout),
		PollInterval:   cfg.GetDuration(keyPollInterval),
	}

	if raw := strings.TrimSpace(cfg.GetString(keyMaxApproval)); raw != "" {
		decimals := network.Decimals
		if decimals == 0 {
			decimals = domain.DefaultDecimals
		}
		maxApproval, err := domain.ParseAmount(raw, decimals)
		if err != nil {
			return domain.Network{}, fmt.Errorf("%s: %w", keyMaxApproval, err)
		}
		network.MaxApproval = maxApproval
	}

	network = network.WithDefaults()
	if err := network.Validate(); err != nil {
		return domain.Network{}, fmt.Errorf("network config: %w", err)
	}

	return network, nil
}

func secretsDir(cfg *viper.Viper, homeDir string) string {
	if dir := strings.TrimSpace(cfg.GetString(keySecretsDir)); dir != "" {
		return dir
	}
	return filepath.Join(homeDir, configDir, "secrets")
}

// newLogger writes console-encoded logs to w so stdout stays free for
// rendered output.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}
