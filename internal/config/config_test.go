package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	want := []string{"claude", "gemini", "codex"}
	if !slices.Equal(cfg.Models.Available, want) {
		t.Errorf("Models.Available = %v, want %v", cfg.Models.Available, want)
	}
	if cfg.Roles.Strategist != "" {
		t.Errorf("Roles.Strategist = %q, want empty", cfg.Roles.Strategist)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() should be valid, got %v", errs)
	}
}

func TestConfig_SourceMethods(t *testing.T) {
	cfg := Default()
	cfg.Roles.Strategist = "gemini"

	if got := cfg.StrategistOverride(); got != "gemini" {
		t.Errorf("StrategistOverride() = %q, want %q", got, "gemini")
	}

	models := cfg.AvailableModels()
	models[0] = "mutated"
	if cfg.Models.Available[0] != "claude" {
		t.Error("AvailableModels() should return a copy")
	}
}

func TestFromMap(t *testing.T) {
	t.Run("overrides layered over defaults", func(t *testing.T) {
		cfg, err := FromMap(map[string]any{
			"models": map[string]any{"available": []string{"claude", "gemini"}},
			"roles":  map[string]any{"strategist": "gemini"},
		})
		if err != nil {
			t.Fatalf("FromMap() error = %v", err)
		}
		if !slices.Equal(cfg.Models.Available, []string{"claude", "gemini"}) {
			t.Errorf("Models.Available = %v", cfg.Models.Available)
		}
		if cfg.Roles.Strategist != "gemini" {
			t.Errorf("Roles.Strategist = %q, want %q", cfg.Roles.Strategist, "gemini")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
		}
	})

	t.Run("empty map yields defaults", func(t *testing.T) {
		cfg, err := FromMap(map[string]any{})
		if err != nil {
			t.Fatalf("FromMap() error = %v", err)
		}
		if !slices.Equal(cfg.Models.Available, DefaultModels()) {
			t.Errorf("Models.Available = %v, want %v", cfg.Models.Available, DefaultModels())
		}
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := FromMap(map[string]any{
			"models": map[string]any{"available": []string{}},
		})
		if err == nil {
			t.Fatal("expected validation error for empty models.available")
		}
		var verrs ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("error type = %T, want ValidationErrors", err)
		}
	})
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `models:
  available: [codex, claude]
roles:
  strategist: codex
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !slices.Equal(cfg.Models.Available, []string{"codex", "claude"}) {
		t.Errorf("Models.Available = %v", cfg.Models.Available)
	}
	if cfg.Roles.Strategist != "codex" {
		t.Errorf("Roles.Strategist = %q, want %q", cfg.Roles.Strategist, "codex")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADVERSARIAL_CRITIQUE_ROLES_STRATEGIST", "gemini")

	v := viper.New()
	SetDefaults(v)
	BindEnv(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Roles.Strategist != "gemini" {
		t.Errorf("Roles.Strategist = %q, want %q", cfg.Roles.Strategist, "gemini")
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("honours XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		if got := ConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
			t.Errorf("ConfigDir() = %q", got)
		}
		if got := ConfigFile(); got != filepath.Join("/tmp/xdg", AppName, "config.yaml") {
			t.Errorf("ConfigFile() = %q", got)
		}
	})

	t.Run("falls back to home directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		if got := ConfigDir(); got != filepath.Join(home, ".config", AppName) {
			t.Errorf("ConfigDir() = %q", got)
		}
	})
}
