// Package config loads studyplan configuration from built-in defaults, the
// user config file, a project override and STUDYPLAN_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/studyplan/internal/keyring"
	"github.com/alexanderramin/studyplan/internal/llm"
	"github.com/spf13/viper"
)

const projectConfigName = ".studyplan.yaml"

// Config holds all configuration for studyplan.
type Config struct {
	DBPath string    `mapstructure:"db_path"`
	Log    LogConfig `mapstructure:"log"`
	LLM    LLMConfig `mapstructure:"llm"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

// LLMConfig holds plan generator backend settings.
type LLMConfig struct {
	Provider        string `mapstructure:"provider"`
	Endpoint        string `mapstructure:"endpoint"`
	Model           string `mapstructure:"model"`
	TimeoutMs       int    `mapstructure:"timeout_ms"`
	MaxRetries      int    `mapstructure:"max_retries"`
	RetryBackoffMs  int    `mapstructure:"retry_backoff_ms"`
	LogCalls        bool   `mapstructure:"log_calls"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (STUDYPLAN_*, ANTHROPIC_API_KEY)
// 2. Project config (.studyplan.yaml in current directory or parent)
// 3. User config (~/.config/studyplan/config.yaml)
// 4. Built-in defaults
// An Anthropic key missing from all of these is looked up in the OS keyring.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(UserConfigDir())
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if project := findProjectConfig(); project != "" {
		pv := viper.New()
		pv.SetConfigFile(project)
		if err := pv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", project, err)
		}
		if err := v.MergeConfigMap(pv.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, err
	}
	if cfg.LLM.AnthropicAPIKey == "" {
		if key, err := keyring.GetAPIKey(); err == nil {
			cfg.LLM.AnthropicAPIKey = key
		}
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
// Environment overrides still apply; the keyring is not consulted.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("STUDYPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("llm.anthropic_api_key", "STUDYPLAN_LLM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.Log.Dir = expandHome(cfg.Log.Dir)
	if _, err := llm.ParseProvider(cfg.LLM.Provider); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	home := dataDir()
	v.SetDefault("db_path", filepath.Join(home, "studyplan.db"))

	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", filepath.Join(home, "logs"))

	def := llm.DefaultConfig()
	v.SetDefault("llm.provider", string(llm.ProviderDisabled))
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout_ms", def.TimeoutMs)
	v.SetDefault("llm.max_retries", def.MaxRetries)
	v.SetDefault("llm.retry_backoff_ms", def.RetryBackoffMs)
	v.SetDefault("llm.log_calls", false)
	v.SetDefault("llm.anthropic_api_key", "")
}

// ToLLM maps the file settings onto the llm package config. Endpoint and
// model fall back to the provider's defaults when unset.
func (c *Config) ToLLM() llm.LLMConfig {
	out := llm.DefaultConfig()
	out.Provider, _ = llm.ParseProvider(c.LLM.Provider)
	out.LogCalls = c.LLM.LogCalls
	out.TimeoutMs = c.LLM.TimeoutMs
	out.MaxRetries = c.LLM.MaxRetries
	out.RetryBackoffMs = c.LLM.RetryBackoffMs

	switch out.Provider {
	case llm.ProviderAnthropic:
		out.Endpoint = c.LLM.Endpoint
		out.Model = c.LLM.Model
		out.APIKey = c.LLM.AnthropicAPIKey
	default:
		if c.LLM.Endpoint != "" {
			out.Endpoint = c.LLM.Endpoint
		}
		if c.LLM.Model != "" {
			out.Model = c.LLM.Model
		}
	}
	return out
}

// UserConfigDir returns the XDG config directory for studyplan.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "studyplan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "studyplan")
	}
	return filepath.Join(home, ".config", "studyplan")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studyplan"
	}
	return filepath.Join(home, ".studyplan")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// findProjectConfig searches for .studyplan.yaml in the current directory and parents.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, projectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
