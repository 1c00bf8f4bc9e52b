package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Wallets []walletSchema `toml:"wallets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported wallets schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type walletSchema struct {
	Address   string `toml:"address"`
	Name      string `toml:"name,omitempty"`
	SecretRef string `toml:"secret_ref"`
}
