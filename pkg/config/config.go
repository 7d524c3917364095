package config

import "time"

// Config is the root configuration structure for the xwc tools.
type Config struct {
	// Logging controls the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics controls the Prometheus endpoint served by long-running
	// commands such as watch.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing controls OpenTelemetry span export.
	Tracing TracingConfig `yaml:"tracing"`

	// Watch controls how definition files are watched for changes.
	Watch WatchConfig `yaml:"watch"`

	// Compiler controls definition loading and error reporting.
	Compiler CompilerConfig `yaml:"compiler"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json", "text", or "console".
	// Default: "console"
	Format string `yaml:"format"`

	// AddSource includes the file and line of the log call.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled turns on the metrics HTTP endpoint.
	Enabled bool `yaml:"enabled"`

	// Namespace prefixes every metric name.
	// Default: "xwc"
	Namespace string `yaml:"namespace"`

	// Subsystem follows the namespace in metric names.
	// Default: "compiler"
	Subsystem string `yaml:"subsystem"`

	// ListenAddress is the host:port of the metrics server.
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path metrics are served on.
	// Default: "/metrics"
	Path string `yaml:"path"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled turns on span export.
	Enabled bool `yaml:"enabled"`

	// Exporter selects the span exporter. Only "otlp" is supported.
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the collector address, e.g. "localhost:4317".
	Endpoint string `yaml:"endpoint"`

	// Sampler is "always", "never", or "ratio".
	// Default: "always"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces kept by the "ratio" sampler.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "xwc"
	ServiceName string `yaml:"service_name"`

	// OTLP contains exporter connection settings.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter settings.
type OTLPConfig struct {
	// Insecure disables TLS to the collector.
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export call.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// DebounceInterval is how long a file must stay quiet before it is
	// recompiled.
	// Default: 250ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions lists the definition file extensions to watch.
	// Default: [".yaml", ".yml", ".json"]
	Extensions []string `yaml:"extensions"`

	// IncludeHidden also watches dot-files and dot-directories.
	IncludeHidden bool `yaml:"include_hidden"`
}

// CompilerConfig contains definition loading configuration.
type CompilerConfig struct {
	// MaxFileSize is the largest definition file accepted, in bytes.
	// Default: 1048576 (1MB)
	MaxFileSize int64 `yaml:"max_file_size"`

	// ContextLines is how many source lines around an error are shown.
	// Default: 2
	ContextLines int `yaml:"context_lines"`

	// MaxGridSize is the largest width or height a definition may declare.
	// Default: 500
	MaxGridSize int `yaml:"max_grid_size"`
}
