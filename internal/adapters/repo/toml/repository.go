package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/weth-cli/internal/domain"
	"github.com/bnema/weth-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	walletsPathKey    = "accounts.path"
	walletsFileMode   = 0o600
	walletsDirMode    = 0o700
	walletsConfigDir  = ".weth"
	walletsConfigFile = "wallets.toml"
	tempFilePattern   = ".wallets-*.toml.tmp"
)

// Repository keeps wallet profiles in a TOML file. Addresses are stored and
// matched in checksummed form. Writes go through a temp file and rename, and
// instances sharing a path share a lock.
type Repository struct {
	walletsPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AccountRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, walletsConfigDir, walletsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, walletsConfigDir))
	cfg.SetDefault(walletsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	walletsPath := cfg.GetString(walletsPathKey)
	if walletsPath == "" {
		return nil, errors.New("wallets path is empty")
	}
	walletsPath, err = normalizeWalletsPath(walletsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{walletsPath: walletsPath, mu: lockForPath(walletsPath)}, nil
}

func (r *Repository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := domain.NewAccountID(string(account.ID))
	if err != nil {
		return err
	}
	account.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(account)
	if i := file.indexOf(id); i >= 0 {
		file.Wallets[i] = encoded
	} else {
		file.Wallets = append(file.Wallets, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context, id domain.AccountID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	i := file.indexOf(id)
	if i < 0 {
		return domain.ErrAccountNotFound
	}
	file.Wallets = append(file.Wallets[:i], file.Wallets[i+1:]...)

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Account{}, err
	}

	if i := file.indexOf(id); i >= 0 {
		return fromSchema(file.Wallets[i]), nil
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(file.Wallets))
	for _, entry := range file.Wallets {
		accounts = append(accounts, fromSchema(entry))
	}

	return accounts, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.walletsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read wallets file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode wallets file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeWalletsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve wallets path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.walletsPath), walletsDirMode); err != nil {
		return fmt.Errorf("create wallets directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode wallets file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.walletsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp wallets file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp wallets file: %w", err)
	}

	if err := tempFile.Chmod(walletsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp wallets file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp wallets file: %w", err)
	}

	if err := os.Rename(tempName, r.walletsPath); err != nil {
		return fmt.Errorf("replace wallets file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.walletsPath, walletsFileMode); err != nil {
		return fmt.Errorf("chmod wallets file: %w", err)
	}

	return nil
}

// indexOf matches addresses regardless of checksum casing.
func (s fileSchema) indexOf(id domain.AccountID) int {
	want := id.Address()
	for i, entry := range s.Wallets {
		if domain.AccountID(entry.Address).Address() == want {
			return i
		}
	}
	return -1
}

func toSchema(account domain.Account) walletSchema {
	return walletSchema{
		Address:   string(account.ID),
		Name:      account.Name,
		SecretRef: account.SecretRef,
	}
}

func fromSchema(wallet walletSchema) domain.Account {
	id, err := domain.NewAccountID(wallet.Address)
	if err != nil {
		id = domain.AccountID(wallet.Address)
	}

	return domain.Account{
		ID:        id,
		Name:      wallet.Name,
		SecretRef: wallet.SecretRef,
	}
}
