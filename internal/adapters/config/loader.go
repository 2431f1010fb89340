// Package config provides the configuration loader for vvm.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"go.vvm.dev/vvm/internal/core/domain"
	"go.vvm.dev/vvm/internal/core/ports"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from an optional YAML file inside the
// vvm home directory.
type Loader struct {
	// HomeOverride bypasses home resolution. Used by tests.
	HomeOverride string
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// configFile represents the structure of the optional config.yaml.
type configFile struct {
	IndexURL     string `yaml:"indexUrl"`
	TokenEnv     string `yaml:"tokenEnv"`
	ListCacheTTL string `yaml:"listCacheTtl"`
}

// Load resolves the configuration. A missing config file yields defaults;
// a malformed one is an error rather than a silent fallback.
func (l *Loader) Load() (*domain.Config, error) {
	home := l.HomeOverride
	if home == "" {
		var err error
		home, err = domain.DefaultHome()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to resolve vvm home directory")
		}
	}

	cfg := &domain.Config{
		Home:         home,
		IndexURL:     domain.DefaultIndexURL,
		TokenEnvVar:  domain.DefaultTokenEnvVar,
		ListCacheTTL: domain.DefaultListCacheTTL,
	}

	path := filepath.Join(home, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is rooted in the vvm home
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.IndexURL != "" {
		cfg.IndexURL = file.IndexURL
	}
	if file.TokenEnv != "" {
		cfg.TokenEnvVar = file.TokenEnv
	}
	if file.ListCacheTTL != "" {
		ttl, err := time.ParseDuration(file.ListCacheTTL)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "listCacheTtl", file.ListCacheTTL)
		}
		cfg.ListCacheTTL = ttl
	}

	return cfg, nil
}
