// Package config loads extractor configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/pradyten/pdf-extractor/internal/providers"
)

// Environment variables forming the configuration contract. The API key is
// required for live extraction; the model alias optionally overrides the
// default model.
const (
	EnvAPIKey     = "OPENAI_API_KEY"
	EnvModelAlias = "EXTRACTOR_MODEL_ALIAS"
)

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults, env bindings, and the config file.
func (cm *Manager) initViper(cfgFile string) error {
	// Defaults are registered per leaf key. A struct-valued default for a
	// whole section collides with env-bound keys in the same section when
	// viper flattens settings for Unmarshal.
	defaults := DefaultConfig()
	viper.SetDefault("provider.api_key", defaults.Provider.APIKey)
	viper.SetDefault("provider.base_url", defaults.Provider.BaseURL)
	viper.SetDefault("provider.timeout_seconds", defaults.Provider.TimeoutSeconds)
	viper.SetDefault("extract.model", defaults.Extract.Model)
	viper.SetDefault("extract.max_pages", defaults.Extract.MaxPages)
	viper.SetDefault("extract.temperature", defaults.Extract.Temperature)
	viper.SetDefault("extract.validate_output", defaults.Extract.ValidateOutput)
	viper.SetDefault("templates.dir", defaults.Templates.Dir)
	viper.SetDefault("server.host", defaults.Server.Host)
	viper.SetDefault("server.port", defaults.Server.Port)
	viper.SetDefault("server.samples_dir", defaults.Server.SamplesDir)

	// Preserve the original environment contract exactly.
	_ = viper.BindEnv("provider.api_key", EnvAPIKey)
	_ = viper.BindEnv("extract.model", EnvModelAlias)

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pdf-extractor")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			// A file given explicitly must exist.
			if cfgFile != "" {
				return fmt.Errorf("error reading config file: %w", err)
			}
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	pattern := regexp.MustCompile(`\$\{([^}]+)\}`)
	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})
}

// APIKey returns the resolved provider API key.
func (c *Config) APIKey() string {
	return ResolveEnvVars(c.Provider.APIKey)
}

// ProviderTimeout returns the model call timeout as a duration.
func (c *Config) ProviderTimeout() time.Duration {
	if c.Provider.TimeoutSeconds <= 0 {
		return 300 * time.Second
	}
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

// ToOpenAIConfig converts the config into the provider client config.
func (c *Config) ToOpenAIConfig() providers.OpenAIConfig {
	return providers.OpenAIConfig{
		APIKey:  c.APIKey(),
		BaseURL: c.Provider.BaseURL,
		Timeout: c.ProviderTimeout(),
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# pdf-extractor configuration
# The API key uses ${ENV_VAR} syntax to reference environment variables
# Set it in your shell: export OPENAI_API_KEY=xxx

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
