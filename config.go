package premiumo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration, typically ~/.config/premiumo/config.yaml.
type Config struct {
	Storage StorageConfig `json:"storage" yaml:"storage"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `json:"backend" yaml:"backend"`                 // "file" or "sqlite"
	Path    string `json:"path,omitempty" yaml:"path,omitempty"` // data directory (file) or database file (sqlite)
}

// DefaultConfig returns the configuration used when no config file exists:
// file-backed storage in the user's config directory.
func DefaultConfig() Config {
	return Config{Storage: StorageConfig{Backend: "file"}}
}

// LoadConfig loads configuration from a file, YAML or JSON based on the
// extension. A missing file is not an error: it yields the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Backend {
	case "", "file", "sqlite":
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (want \"file\" or \"sqlite\")", c.Storage.Backend)
	}
}

// dataPath resolves the storage path, defaulting into the user config dir.
func (c Config) dataPath(defaultName string) (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve user config dir: %w", err)
	}
	return filepath.Join(base, "premiumo", defaultName), nil
}

// OpenKV opens the configured KV backend.
func (c Config) OpenKV() (KV, error) {
	switch c.Storage.Backend {
	case "", "file":
		dir, err := c.dataPath("data")
		if err != nil {
			return nil, err
		}
		return NewFileKV(dir), nil
	case "sqlite":
		path, err := c.dataPath("premiumo.db")
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("could not create data directory: %w", err)
		}
		return NewSQLiteKV(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
}
