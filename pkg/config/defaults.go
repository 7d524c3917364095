package config

import "time"

// Default values for configuration fields.
const (
	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "console"

	// Metrics defaults
	DefaultMetricsNamespace     = "xwc"
	DefaultMetricsSubsystem     = "compiler"
	DefaultMetricsListenAddress = "127.0.0.1:9090"
	DefaultMetricsPath          = "/metrics"

	// Tracing defaults
	DefaultTracingExporter    = "otlp"
	DefaultTracingSampler     = "always"
	DefaultTracingSampleRatio = 1.0
	DefaultTracingServiceName = "xwc"
	DefaultOTLPTimeout        = 10 * time.Second

	// Watch defaults
	DefaultWatchDebounceInterval = 250 * time.Millisecond

	// Compiler defaults
	DefaultCompilerMaxFileSize  = int64(1048576) // 1MB
	DefaultCompilerContextLines = 2
	DefaultCompilerMaxGridSize  = 500
)

// DefaultWatchExtensions are the definition file extensions watched when
// none are configured.
var DefaultWatchExtensions = []string{".yaml", ".yml", ".json"}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}

	// Metrics defaults
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// Tracing defaults
	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Tracing.Sampler == "" {
		cfg.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultTracingServiceName
	}
	if cfg.Tracing.OTLP.Timeout == 0 {
		cfg.Tracing.OTLP.Timeout = DefaultOTLPTimeout
	}

	// Watch defaults
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultWatchDebounceInterval
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}

	// Compiler defaults
	if cfg.Compiler.MaxFileSize == 0 {
		cfg.Compiler.MaxFileSize = DefaultCompilerMaxFileSize
	}
	if cfg.Compiler.ContextLines == 0 {
		cfg.Compiler.ContextLines = DefaultCompilerContextLines
	}
	if cfg.Compiler.MaxGridSize == 0 {
		cfg.Compiler.MaxGridSize = DefaultCompilerMaxGridSize
	}
}
