// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the signed-in identity and its
// token go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"copybus/cli/internal/xdg"

	"github.com/google/uuid"
)

// DefaultAPIBaseURL points at a local fleet API when nothing is configured.
const DefaultAPIBaseURL = "http://localhost:3000/api"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL string `json:"api_base_url"`
	LogLevel   string `json:"log_level"`
	// InstallID identifies this CLI installation in request headers.
	InstallID string `json:"install_id"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults. The install id
// is generated on first load and written back so it stays stable.
// COPYBUS_API_URL overrides the configured base URL without touching the file.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	case errors.Is(err, os.ErrNotExist):
		c.APIBaseURL = DefaultAPIBaseURL
		c.LogLevel = "info"
	default:
		return c, err
	}

	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.InstallID == "" {
		c.InstallID = uuid.NewString()
		if err := Save(c); err != nil {
			return c, err
		}
	}
	if env := os.Getenv("COPYBUS_API_URL"); env != "" {
		c.APIBaseURL = env
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
