// Package config loads holdtrack settings from ~/.holdtrack/config.yaml,
// HOLDTRACK_* environment variables and command-line overrides, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognised by holdtrack.
const (
	EnvHome         = "HOLDTRACK_HOME"
	EnvAPIURL       = "HOLDTRACK_API_URL"
	EnvPageSize     = "HOLDTRACK_PAGE_SIZE"
	EnvLogLevel     = "HOLDTRACK_LOG_LEVEL"
	EnvLogFormat    = "HOLDTRACK_LOG_FORMAT"
	EnvOutputFormat = "HOLDTRACK_OUTPUT_FORMAT"
)

// Defaults.
const (
	DefaultBaseURL        = "http://localhost:8000"
	DefaultTimeout        = 10 * time.Second
	DefaultPageSize       = 50
	MinPageSize           = 1
	MaxPageSize           = 500
	DefaultStatusInterval = 5 * time.Second
	DefaultStatusStale    = 3 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultOutputFormat   = "table"

	homeDirName    = ".holdtrack"
	configFileName = "config.yaml"
	configFileMode = 0o600
	configDirMode  = 0o750
)

// Validation errors.
var (
	ErrInvalidBaseURL   = errors.New("api.base_url must be an absolute http or https URL")
	ErrInvalidTimeout   = errors.New("api.timeout must be positive")
	ErrInvalidPageSize  = fmt.Errorf("holders.page_size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidInterval  = errors.New("status.interval must be positive")
	ErrInvalidStaleTime = errors.New("status.stale_time cannot be negative")
	ErrInvalidFormat    = errors.New("output.default_format must be table, json or ndjson")
)

// Config is the full holdtrack configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Holders HoldersConfig `yaml:"holders"`
	Status  StatusConfig  `yaml:"status"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`

	configPath string
}

// APIConfig locates the holdings API.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// HoldersConfig controls holder list paging.
type HoldersConfig struct {
	PageSize int `yaml:"page_size"`
}

// StatusConfig controls status polling.
type StatusConfig struct {
	Interval  time.Duration `yaml:"interval"`
	StaleTime time.Duration `yaml:"stale_time"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Default returns a configuration populated with default values and no file path.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Holders: HoldersConfig{PageSize: DefaultPageSize},
		Status: StatusConfig{
			Interval:  DefaultStatusInterval,
			StaleTime: DefaultStatusStale,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputConfig{DefaultFormat: DefaultOutputFormat},
	}
}

// New returns defaults overlaid with the config file (if present) and the
// environment. A malformed file is reported through Load, not here; New keeps
// the defaults for any section it could not read.
func New() *Config {
	cfg := Default()
	cfg.configPath = DefaultPath()
	_ = cfg.Load()
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// DefaultPath returns the config file location under HomeDir.
func DefaultPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// HomeDir returns $HOLDTRACK_HOME or ~/.holdtrack.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return homeDirName
	}
	return filepath.Join(home, homeDirName)
}

// ConfigPath returns the file this configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Load and Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load overlays the config file onto c. A missing file is not an error.
func (c *Config) Load() error {
	if c.configPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes c to its config path, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), configDirMode); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, configFileMode); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ApplyEnv overlays HOLDTRACK_* variables. Unparseable numbers are ignored so
// Validate reports the file value instead.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.Holders.PageSize = n
		}
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
}

// Validate checks every field and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.API.BaseURL); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if err := ValidatePageSize(c.Holders.PageSize); err != nil {
		errs = append(errs, err)
	}
	if c.Status.Interval <= 0 {
		errs = append(errs, ErrInvalidInterval)
	}
	if c.Status.StaleTime < 0 {
		errs = append(errs, ErrInvalidStaleTime)
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.DefaultFormat))
	}

	return errors.Join(errs...)
}

// ValidatePageSize checks n against the server's accepted limit range.
func ValidatePageSize(n int) error {
	if n < MinPageSize || n > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, n)
	}
	return nil
}

// Output formats.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
)

// IsValidOutputFormat reports whether format is table, json or ndjson.
func IsValidOutputFormat(format string) bool {
	switch strings.ToLower(format) {
	case OutputTable, OutputJSON, OutputNDJSON:
		return true
	default:
		return false
	}
}

var (
	globalConfig   *Config    //nolint:gochecknoglobals // Loaded once per CLI invocation
	globalConfigMu sync.Mutex //nolint:gochecknoglobals // Protects globalConfig
)

// GetGlobalConfig returns the process-wide configuration, loading it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// ResetGlobalConfigForTest drops the cached configuration so the next
// GetGlobalConfig call reloads from the current environment.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
