package config

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. HIDE_MARKER.
const EnvPrefix = "HIDE"

// Config is the effective configuration for one invocation. It is resolved
// from flags, then environment, then defaults, and never read from or
// written to disk.
type Config struct {
	Marker  string `mapstructure:"marker" toml:"marker"`
	Plain   bool   `mapstructure:"plain" toml:"plain"`
	Logging struct {
		Level  string `mapstructure:"level" toml:"level"`
		Format string `mapstructure:"format" toml:"format"`
	} `mapstructure:"logging" toml:"logging"`
	WithHide struct {
		OnFailure string `mapstructure:"on_failure" toml:"on_failure"`
	} `mapstructure:"with_hide" toml:"with_hide"`
}

// MarkerRune returns the configured marker. Only meaningful on a validated
// config.
func (c *Config) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Marker)
	return r
}

// Global holds process-wide presentation state read before flag parsing
var Global struct {
	Plain bool // Disable colors and symbols
}

// IsPlain returns true if plain output mode is enabled
func IsPlain() bool {
	return Global.Plain
}

// SetPlain toggles plain output mode
func SetPlain(plain bool) {
	Global.Plain = plain
}

// LoadFromEnv loads presentation settings from environment variables so
// errors raised during flag parsing are already rendered correctly.
func LoadFromEnv() {
	if isTruthy(os.Getenv(EnvPrefix + "_PLAIN")) {
		Global.Plain = true
	}
}

// Initialize resets viper and registers defaults and environment bindings.
// It is called once per command execution.
func Initialize() error {
	viper.Reset()
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Shorter names for the logging overrides.
	if err := viper.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return err
	}
	return viper.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT")
}

// Get returns the current configuration without validating it. Keys viper
// has no value for keep their built-in defaults.
func Get() (*Config, error) {
	cfg := DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load returns the validated configuration and applies its presentation
// settings.
func Load() (*Config, error) {
	cfg, err := Get()
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.Plain {
		SetPlain(true)
	}
	return cfg, nil
}

// GetString returns a configuration value by key
func GetString(key string) string {
	return viper.GetString(key)
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
