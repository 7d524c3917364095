package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. XWC_LOGGING_LEVEL.
const EnvPrefix = "XWC_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention XWC_SECTION_FIELD (e.g., XWC_METRICS_LISTEN_ADDRESS) and always
// take precedence over the file.
//
// An empty path or a path that does not exist yields the defaults, so the
// tools run without any configuration file.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := loadOrDefault(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

func loadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. A value that does not parse is reported as a FieldError.
func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []FieldError

	str := func(name string, dst *string) {
		if val, ok := lookup(EnvPrefix + name); ok && val != "" {
			*dst = val
		}
	}
	boolean := func(name string, dst *bool) {
		if val, ok := lookup(EnvPrefix + name); ok && val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				errs = append(errs, envError(name, val, "a boolean"))
				return
			}
			*dst = b
		}
	}
	duration := func(name string, dst *time.Duration) {
		if val, ok := lookup(EnvPrefix + name); ok && val != "" {
			d, err := time.ParseDuration(val)
			if err != nil {
				errs = append(errs, envError(name, val, "a duration"))
				return
			}
			*dst = d
		}
	}
	integer := func(name string, dst *int64) {
		if val, ok := lookup(EnvPrefix + name); ok && val != "" {
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				errs = append(errs, envError(name, val, "an integer"))
				return
			}
			*dst = i
		}
	}

	// Logging overrides
	str("LOGGING_LEVEL", &cfg.Logging.Level)
	str("LOGGING_FORMAT", &cfg.Logging.Format)
	boolean("LOGGING_ADD_SOURCE", &cfg.Logging.AddSource)

	// Metrics overrides
	boolean("METRICS_ENABLED", &cfg.Metrics.Enabled)
	str("METRICS_NAMESPACE", &cfg.Metrics.Namespace)
	str("METRICS_SUBSYSTEM", &cfg.Metrics.Subsystem)
	str("METRICS_LISTEN_ADDRESS", &cfg.Metrics.ListenAddress)
	str("METRICS_PATH", &cfg.Metrics.Path)

	// Tracing overrides
	boolean("TRACING_ENABLED", &cfg.Tracing.Enabled)
	str("TRACING_EXPORTER", &cfg.Tracing.Exporter)
	str("TRACING_ENDPOINT", &cfg.Tracing.Endpoint)
	str("TRACING_SAMPLER", &cfg.Tracing.Sampler)
	str("TRACING_SERVICE_NAME", &cfg.Tracing.ServiceName)
	boolean("TRACING_OTLP_INSECURE", &cfg.Tracing.OTLP.Insecure)
	if val, ok := lookup(EnvPrefix + "TRACING_SAMPLE_RATIO"); ok && val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Tracing.SampleRatio = f
		} else {
			errs = append(errs, envError("TRACING_SAMPLE_RATIO", val, "a number"))
		}
	}

	// Watch overrides
	duration("WATCH_DEBOUNCE_INTERVAL", &cfg.Watch.DebounceInterval)
	boolean("WATCH_INCLUDE_HIDDEN", &cfg.Watch.IncludeHidden)
	if val, ok := lookup(EnvPrefix + "WATCH_EXTENSIONS"); ok && val != "" {
		cfg.Watch.Extensions = splitList(val)
	}

	// Compiler overrides
	integer("COMPILER_MAX_FILE_SIZE", &cfg.Compiler.MaxFileSize)
	var contextLines = int64(cfg.Compiler.ContextLines)
	integer("COMPILER_CONTEXT_LINES", &contextLines)
	cfg.Compiler.ContextLines = int(contextLines)
	var maxGridSize = int64(cfg.Compiler.MaxGridSize)
	integer("COMPILER_MAX_GRID_SIZE", &maxGridSize)
	cfg.Compiler.MaxGridSize = int(maxGridSize)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func envError(name, val, want string) FieldError {
	return FieldError{
		Field:   EnvPrefix + name,
		Message: fmt.Sprintf("%q is not %s", val, want),
	}
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
