// Package config defines process configuration and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// PackagesFile points to a YAML file with sensor packages. When empty
	// the built-in sample packages are processed.
	PackagesFile string `koanf:"packages_file"`

	// MetricsEnabled toggles Prometheus metric recording.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsFile, if set, receives the metrics in Prometheus text format
	// after a run.
	MetricsFile string `koanf:"metrics_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      LogFormatText,
		MetricsEnabled: true,
	}
}
