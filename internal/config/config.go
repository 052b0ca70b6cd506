// internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperr "shawl/internal/error"
	"shawl/internal/formstate"
	"shawl/internal/models"
	"shawl/internal/storage"
	"shawl/internal/utils"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFileName = "config.yaml"
	DefaultConfigDir      = ".config/shawl"
	DefaultStateFileName  = "state.json"
	DefaultBrandsDir      = "brands"
	DefaultLogFileName    = "shawl.log"
	DefaultBaseURL        = "http://127.0.0.1:7322"
	DefaultTimeout        = 30 * time.Second

	// StorageKeyEnv holds the passphrase for password encryption.
	StorageKeyEnv = "SHAWL_STORAGE_KEY"
)

// Config is the client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig describes the control panel endpoint.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"-"`
	TimeoutRaw  string        `yaml:"timeout"`
	Policy      string        `yaml:"policy"`
	MaxInFlight int64         `yaml:"max_in_flight"`
}

// StorageConfig selects the state store.
type StorageConfig struct {
	Backend         string `yaml:"backend"`
	Path            string `yaml:"path"`
	EncryptPassword bool   `yaml:"encrypt_password"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Marker    string   `yaml:"marker"`
	Buttons   []string `yaml:"buttons"`
	Brand     string   `yaml:"brand"`
	BrandsDir string   `yaml:"brands_dir"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// GetDefaultConfigDir returns ~/.config/shawl.
func GetDefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// GetDefaultConfigPath returns ~/.config/shawl/config.yaml.
func GetDefaultConfigPath() (string, error) {
	dir, err := GetDefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFileName), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dir, err := GetDefaultConfigDir()
	if err != nil {
		dir = "."
	}

	buttons := make([]string, 0, len(models.AllActions()))
	for _, a := range models.AllActions() {
		buttons = append(buttons, string(a))
	}

	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
			Policy:  "overlap",
		},
		Storage: StorageConfig{
			Backend: storage.BackendJSON,
			Path:    filepath.Join(dir, DefaultStateFileName),
		},
		UI: UIConfig{
			Marker:    formstate.MarkerBorderFilter,
			Buttons:   buttons,
			BrandsDir: filepath.Join(dir, DefaultBrandsDir),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dir, DefaultLogFileName),
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, apperr.New(apperr.ConfigError, "failed to read config file", err)
	}

	expanded := expandEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, apperr.New(apperr.ConfigError, "failed to parse config file", err)
	}

	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}

	cfg.Storage.Path = utils.ExpandHome(cfg.Storage.Path)
	cfg.UI.BrandsDir = utils.ExpandHome(cfg.UI.BrandsDir)
	cfg.Logging.File = utils.ExpandHome(cfg.Logging.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) parseDurations() error {
	if c.API.TimeoutRaw == "" {
		return nil
	}
	d, err := time.ParseDuration(c.API.TimeoutRaw)
	if err != nil {
		return apperr.New(apperr.ConfigError, fmt.Sprintf("invalid api.timeout %q", c.API.TimeoutRaw), err)
	}
	c.API.Timeout = d
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	invalid := func(msg string) error {
		return apperr.New(apperr.ValidationError, msg, nil)
	}

	if strings.TrimSpace(c.API.BaseURL) == "" {
		return invalid("api.base_url is required")
	}
	if c.API.Timeout < 0 {
		return invalid("api.timeout must not be negative")
	}
	if c.API.MaxInFlight < 0 {
		return invalid("api.max_in_flight must not be negative")
	}
	switch c.API.Policy {
	case "", "overlap", "serialize", "dedupe":
	default:
		return invalid(fmt.Sprintf("api.policy: unknown policy %q", c.API.Policy))
	}

	switch c.Storage.Backend {
	case "", storage.BackendJSON, storage.BackendSQLite:
		if c.Storage.Path == "" {
			return invalid("storage.path is required")
		}
	case storage.BackendMemory:
	default:
		return invalid(fmt.Sprintf("storage.backend: unknown backend %q", c.Storage.Backend))
	}

	switch c.UI.Marker {
	case "", formstate.MarkerBorder, formstate.MarkerBorderFilter:
	default:
		return invalid(fmt.Sprintf("ui.marker: unknown marker %q", c.UI.Marker))
	}

	seen := make(map[string]bool, len(c.UI.Buttons))
	for _, b := range c.UI.Buttons {
		if _, err := models.ParseAction(b); err != nil {
			return invalid(fmt.Sprintf("ui.buttons: %v", err))
		}
		if seen[b] {
			return invalid(fmt.Sprintf("ui.buttons: duplicate button %q", b))
		}
		seen[b] = true
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return invalid(fmt.Sprintf("logging.level: unknown level %q", c.Logging.Level))
	}
	return nil
}

// Actions returns the enabled buttons as actions, in configured order.
func (c *Config) Actions() []models.Action {
	out := make([]models.Action, 0, len(c.UI.Buttons))
	for _, b := range c.UI.Buttons {
		if a, err := models.ParseAction(b); err == nil {
			out = append(out, a)
		}
	}
	return out
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with the environment value; unset variables expand to "".
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
