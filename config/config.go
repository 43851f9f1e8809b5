// ABOUTME: Application configuration and credential management
// ABOUTME: JSON config at XDG data dir with environment variable overrides
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is used for XDG data paths.
const AppName = "consultorml"

const configFileName = "config.json"

// Config holds API credentials and local paths. Environment variables
// override file values:
//   - PERPLEXITY_API_KEY
//   - FIREFLIES_API_KEY
//   - GOOGLE_CLIENT_ID
//   - GOOGLE_CLIENT_SECRET
type Config struct {
	PerplexityAPIKey   string `json:"perplexity_api_key,omitempty"`
	FirefliesAPIKey    string `json:"fireflies_api_key,omitempty"`
	GoogleClientID     string `json:"google_client_id,omitempty"`
	GoogleClientSecret string `json:"google_client_secret,omitempty"`

	// StorePath and SyncDBPath default under the XDG data dir.
	StorePath  string `json:"store_path,omitempty"`
	SyncDBPath string `json:"sync_db_path,omitempty"`
}

// DataDir returns the XDG data directory for the app.
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(DataDir(), configFileName)
}

// Load reads the config file, applies defaults and env overrides.
// A missing file yields a default config, not an error.
func Load() (*Config, error) {
	cfg := &Config{}

	f, err := os.Open(Path())
	if err == nil {
		defer func() { _ = f.Close() }()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// Save writes the config file with restricted permissions.
func Save(cfg *Config) error {
	if err := os.MkdirAll(DataDir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PERPLEXITY_API_KEY"); v != "" {
		cfg.PerplexityAPIKey = v
	}
	if v := os.Getenv("FIREFLIES_API_KEY"); v != "" {
		cfg.FirefliesAPIKey = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.GoogleClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		cfg.GoogleClientSecret = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.StorePath == "" {
		cfg.StorePath = filepath.Join(DataDir(), "store")
	}
	if cfg.SyncDBPath == "" {
		cfg.SyncDBPath = filepath.Join(DataDir(), "sync.db")
	}
}
