package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "roles.strategist",
		Value:   "Claude!",
		Message: "must be a lowercase identifier",
	}

	expected := "roles.strategist: must be a lowercase identifier (got: Claude!)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "models.available", Value: []string{}, Message: "must list at least one model family"},
		}
		expected := "models.available: must list at least one model family (got: [])"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: 1, Message: "error1"},
			{Field: "field2", Value: 2, Message: "error2"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should contain '2 validation errors', got %q", result)
		}
		if !strings.Contains(result, "1. field1") || !strings.Contains(result, "2. field2") {
			t.Errorf("Error() should number each error, got %q", result)
		}
	})
}

func TestIsValidFamily(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"claude", true},
		{"gemini", true},
		{"gpt-4o", true},
		{"local_llama", true},
		{"codex2", true},
		{"", false},
		{"Claude", false},
		{"2fast", false},
		{"has space", false},
		{"-leading", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFamily(tt.name); got != tt.valid {
				t.Errorf("IsValidFamily(%q) = %v, want %v", tt.name, got, tt.valid)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*Config)
		wantFields []string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) {},
		},
		{
			name: "single family is structurally valid",
			modify: func(c *Config) {
				c.Models.Available = []string{"claude"}
			},
		},
		{
			name: "strategist outside available list is left to role assignment",
			modify: func(c *Config) {
				c.Models.Available = []string{"gemini", "codex"}
				c.Roles.Strategist = "claude"
			},
		},
		{
			name: "empty available list",
			modify: func(c *Config) {
				c.Models.Available = nil
			},
			wantFields: []string{"models.available"},
		},
		{
			name: "malformed family",
			modify: func(c *Config) {
				c.Models.Available = []string{"claude", "Gemini"}
			},
			wantFields: []string{"models.available[1]"},
		},
		{
			name: "duplicate family",
			modify: func(c *Config) {
				c.Models.Available = []string{"claude", "codex", "claude"}
			},
			wantFields: []string{"models.available[2]"},
		},
		{
			name: "malformed strategist",
			modify: func(c *Config) {
				c.Roles.Strategist = "CODEX"
			},
			wantFields: []string{"roles.strategist"},
		},
		{
			name: "unknown log level",
			modify: func(c *Config) {
				c.Logging.Level = "verbose"
			},
			wantFields: []string{"logging.level"},
		},
		{
			name: "upper case log level accepted",
			modify: func(c *Config) {
				c.Logging.Level = "DEBUG"
			},
		},
		{
			name: "warning alias accepted",
			modify: func(c *Config) {
				c.Logging.Level = "warning"
			},
		},
		{
			name: "errors accumulate",
			modify: func(c *Config) {
				c.Models.Available = []string{""}
				c.Roles.Strategist = "Bad Name"
				c.Logging.Level = "loud"
			},
			wantFields: []string{"models.available[0]", "roles.strategist", "logging.level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			errs := cfg.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.wantFields), errs)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}
