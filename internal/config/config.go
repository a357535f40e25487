// Package config loads the PathPlan configuration from the user config
// directory, with environment overrides for the backend URL.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration.
type Config struct {
	BackendURL            string `toml:"backend_url"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	ReferenceLimit        int    `toml:"reference_limit"`
	EvidenceLimit         int    `toml:"evidence_limit"`
	ExportDir             string `toml:"export_dir"`
}

const appDir = "pathplan"

const DefaultConfigToml = `# PathPlan configuration

backend_url = "http://127.0.0.1:5000"
request_timeout_seconds = 120

# How many evidentiary references views show before collapsing.
reference_limit = 3
# Q&A evidence gets a wider window.
evidence_limit = 5

# Where downloaded artifacts land. Empty means the current directory.
export_dir = ""
`

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BackendURL:            "http://127.0.0.1:5000",
		RequestTimeoutSeconds: 120,
		ReferenceLimit:        3,
		EvidenceLimit:         5,
		ExportDir:             "",
	}
}

// Load reads the user's config file, falling back to defaults when it
// does not exist. PATHPLAN_BACKEND_URL always wins over the file.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return withEnv(Default()), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a specific config file; a missing file yields the
// defaults without an error.
func LoadFromPath(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return withEnv(cfg), nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return withEnv(normalize(cfg)), nil
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func withEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("PATHPLAN_BACKEND_URL")); env != "" {
		cfg.BackendURL = env
	}
	return cfg
}

func normalize(cfg Config) Config {
	def := Default()
	if cfg.BackendURL == "" {
		cfg.BackendURL = def.BackendURL
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = def.RequestTimeoutSeconds
	}
	if cfg.ReferenceLimit <= 0 {
		cfg.ReferenceLimit = def.ReferenceLimit
	}
	if cfg.EvidenceLimit <= 0 {
		cfg.EvidenceLimit = def.EvidenceLimit
	}
	return cfg
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, "config.toml"), nil
}
