// Package config loads configuration for the xwc tools.
//
// Configuration is read from a YAML file, completed with defaults, and
// overridden by XWC_SECTION_FIELD environment variables:
//
//	logging:
//	  level: info
//	  format: console
//	metrics:
//	  enabled: true
//	  listen_address: 127.0.0.1:9090
//	watch:
//	  debounce_interval: 250ms
//	  extensions: [".yaml", ".json"]
//	compiler:
//	  max_file_size: 1048576
//	  context_lines: 2
//
// A missing file is not an error: LoadConfigWithEnvOverrides returns the
// defaults. Validate reports every invalid field at once as a
// ValidationError.
package config
