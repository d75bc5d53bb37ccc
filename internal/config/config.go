package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// AppName names the config directory and the environment prefix.
const AppName = "adversarial-critique"

// EnvPrefix is the viper environment prefix. Nested keys use underscores,
// e.g. ADVERSARIAL_CRITIQUE_ROLES_STRATEGIST for roles.strategist.
const EnvPrefix = "ADVERSARIAL_CRITIQUE"

// Config represents the complete adversarial critique configuration
type Config struct {
	Models  ModelsConfig  `mapstructure:"models" yaml:"models"`
	Roles   RolesConfig   `mapstructure:"roles" yaml:"roles"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ModelsConfig lists the model families that may take part in a debate
type ModelsConfig struct {
	// Available is the ordered list of model family identifiers.
	// Order decides which critics are paired first.
	Available []string `mapstructure:"available" yaml:"available"`
}

// RolesConfig controls role assignment
type RolesConfig struct {
	// Strategist overrides strategist detection when non-empty
	Strategist string `mapstructure:"strategist" yaml:"strategist"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn" (or "warning"), "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where debug.log is written. Empty logs to stderr.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// AvailableModels returns a copy of the configured model families.
func (c *Config) AvailableModels() []string {
	return slices.Clone(c.Models.Available)
}

// StrategistOverride returns the configured strategist, or "" when unset.
func (c *Config) StrategistOverride() string {
	return c.Roles.Strategist
}

// DefaultModels returns the model families available out of the box
func DefaultModels() []string {
	return []string{"claude", "gemini", "codex"}
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Models: ModelsConfig{
			Available: DefaultModels(),
		},
		Roles: RolesConfig{
			Strategist: "", // Empty means detect from env, then default
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("models.available", defaults.Models.Available)
	v.SetDefault("roles.strategist", defaults.Roles.Strategist)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
}

// BindEnv lets ADVERSARIAL_CRITIQUE_* environment variables override config
// keys, with dots replaced by underscores.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// FromMap builds a validated Config from nested maps layered over the
// defaults, e.g. {"roles": {"strategist": "gemini"}}.
func FromMap(values map[string]any) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if err := v.MergeConfigMap(values); err != nil {
		return nil, fmt.Errorf("failed to merge config values: %w", err)
	}
	return Load(v)
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
