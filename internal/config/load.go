package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. EMAILWRITER_LLM_BASE_URL.
const EnvPrefix = "EMAILWRITER"

// Default values applied before the config file and environment are read.
const (
	DefaultPort            = 9090
	DefaultLogLevel        = "info"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 45 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultModelName       = "gemini-2.0-flash"
	DefaultAPIVersion      = "v1beta"
	DefaultBackend         = "rest"
	DefaultLLMTimeout      = 30 * time.Second
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to Unmarshal unless bound explicitly.
	for _, key := range []string{"llm.gemini_api_key", "llm.base_url"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags and the cross-section rules
// registered in newValidator.
func Validate(cfg *Config) error {
	if err := newValidator().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateTimeouts, Config{})
	return v
}

// validateTimeouts requires the server write timeout to outlast the upstream
// timeout, so a timed-out generation can still be reported to the client.
func validateTimeouts(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if cfg.LLM.Timeout > 0 && cfg.Server.WriteTimeout <= cfg.LLM.Timeout {
		sl.ReportError(cfg.Server.WriteTimeout, "Server.WriteTimeout", "write_timeout", "gtllmtimeout", cfg.LLM.Timeout.String())
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.api_version", DefaultAPIVersion)
	v.SetDefault("llm.backend", DefaultBackend)
	v.SetDefault("llm.timeout", DefaultLLMTimeout)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}
