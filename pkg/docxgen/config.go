package docxgen

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Compression methods for package entries
const (
	CompressionDeflate = "deflate"
	CompressionStore   = "store"
)

// EnvPrefix prefixes every environment variable read by ConfigFromEnvironment
const EnvPrefix = "DOCXGEN"

// Config contains all configuration options for document generation
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error)
	LogLevel string `mapstructure:"log_level"`
	// OutputDir is where Save writes packages
	OutputDir string `mapstructure:"output_dir"`
	// Extension is appended to the document identity, dot included
	Extension string `mapstructure:"extension"`
	// Compression is deflate or store
	Compression string `mapstructure:"compression"`
	// Locale drives digit grouping in computed totals
	Locale string `mapstructure:"locale"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		OutputDir:   ".",
		Extension:   ".docx",
		Compression: CompressionDeflate,
		Locale:      "en",
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("compression", defaults.Compression)
	v.SetDefault("locale", defaults.Locale)

	// DOCXGEN_LOG_LEVEL, DOCXGEN_OUTPUT_DIR, ...
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

func configFromViper(v *viper.Viper) *Config {
	return &Config{
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		OutputDir:   v.GetString("output_dir"),
		Extension:   v.GetString("extension"),
		Compression: strings.ToLower(v.GetString("compression")),
		Locale:      v.GetString("locale"),
	}
}

// ConfigFromEnvironment creates a configuration from DOCXGEN_* environment
// variables
func ConfigFromEnvironment() *Config {
	return configFromViper(newViper())
}

// LoadConfig reads a YAML or TOML config file. Environment variables still
// take precedence over the file.
func LoadConfig(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config := configFromViper(v)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}
	if config.Extension == "" {
		config.Extension = defaults.Extension
	}
	if config.Compression == "" {
		config.Compression = defaults.Compression
	}
	if config.Locale == "" {
		config.Locale = defaults.Locale
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.Compression != CompressionDeflate && c.Compression != CompressionStore {
		return errors.New("invalid compression: " + c.Compression)
	}

	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return errors.New("extension must start with a dot: " + c.Extension)
	}

	if c.Locale == "" {
		return errors.New("locale cannot be empty")
	}

	return nil
}

// GetGlobalConfig returns a copy of the global configuration
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		globalConfigMutex.Lock()
		if globalConfig == nil {
			globalConfig = ConfigFromEnvironment()
		}
		globalConfigMutex.Unlock()
	})

	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	configOnce.Do(func() {})

	globalConfigMutex.Lock()
	if config == nil {
		config = DefaultConfig()
	}
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}
