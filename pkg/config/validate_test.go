package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_DefaultConfig(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("expected default config to pass validation, got error: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Errors) < 2 {
		t.Errorf("expected multiple errors, got %d", len(validationErr.Errors))
	}
	if !strings.Contains(validationErr.Error(), "validation failed with") {
		t.Errorf("error message should mention multiple errors: %s", validationErr.Error())
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(*Config)
		errorField string
	}{
		{
			name:       "invalid logging format",
			modify:     func(c *Config) { c.Logging.Format = "xml" },
			errorField: "logging.format",
		},
		{
			name: "metrics listen address without port",
			modify: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.ListenAddress = "localhost"
			},
			errorField: "metrics.listen_address",
		},
		{
			name: "metrics path without slash",
			modify: func(c *Config) {
				c.Metrics.Enabled = true
				c.Metrics.Path = "metrics"
			},
			errorField: "metrics.path",
		},
		{
			name:       "sample ratio out of range",
			modify:     func(c *Config) { c.Tracing.SampleRatio = 1.5 },
			errorField: "tracing.sample_ratio",
		},
		{
			name:       "tracing enabled without endpoint",
			modify:     func(c *Config) { c.Tracing.Enabled = true },
			errorField: "tracing.endpoint",
		},
		{
			name:       "negative debounce",
			modify:     func(c *Config) { c.Watch.DebounceInterval = -1 },
			errorField: "watch.debounce_interval",
		},
		{
			name:       "extension without dot",
			modify:     func(c *Config) { c.Watch.Extensions = []string{"yaml"} },
			errorField: "watch.extensions[0]",
		},
		{
			name:       "too many context lines",
			modify:     func(c *Config) { c.Compiler.ContextLines = 50 },
			errorField: "compiler.context_lines",
		},
		{
			name:       "negative max grid size",
			modify:     func(c *Config) { c.Compiler.MaxGridSize = -1 },
			errorField: "compiler.max_grid_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := Validate(cfg)
			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, fe := range validationErr.Errors {
				if fe.Field == tt.errorField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error for field %q, got %v", tt.errorField, validationErr.Errors)
			}
		})
	}
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := Default()
	cfg.Watch.Extensions = []string{".json"}
	ApplyDefaults(cfg)

	if len(cfg.Watch.Extensions) != 1 {
		t.Errorf("ApplyDefaults overwrote configured extensions: %v", cfg.Watch.Extensions)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace {
		t.Errorf("expected default namespace, got %q", cfg.Metrics.Namespace)
	}
}
