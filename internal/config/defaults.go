package config

import "github.com/spf13/viper"

const (
	DefaultMarker    = "."
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultOnFailure = "un-hide"
)

func SetDefaults() {
	viper.SetDefault("marker", DefaultMarker)
	viper.SetDefault("plain", false)

	// Quiet unless -v or HIDE_LOG_LEVEL asks for more.
	viper.SetDefault("logging.level", DefaultLogLevel)
	viper.SetDefault("logging.format", DefaultLogFormat)

	viper.SetDefault("with_hide.on_failure", DefaultOnFailure)
}

func DefaultConfig() *Config {
	cfg := &Config{
		Marker: DefaultMarker,
	}
	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat
	cfg.WithHide.OnFailure = DefaultOnFailure
	return cfg
}

func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

func ValidLogFormats() []string {
	return []string{"text", "json"}
}

func ValidOnFailureModes() []string {
	return []string{"keep-hidden", "un-hide"}
}
