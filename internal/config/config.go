package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains the upstream generative-text API settings.
type LLMConfig struct {
	// GeminiAPIKey is sent in the x-goog-api-key header
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// BaseURL is the scheme and host of the upstream API,
	// e.g. https://generativelanguage.googleapis.com
	BaseURL string `mapstructure:"base_url" validate:"required,url"`

	// ModelName selects the model path segment
	ModelName string `mapstructure:"model_name" validate:"required"`

	// APIVersion is the leading path segment, e.g. v1beta
	APIVersion string `mapstructure:"api_version" validate:"required"`

	// Backend selects the transport: "rest" (hand-built request) or "sdk" (genai client)
	Backend string `mapstructure:"backend" validate:"required,oneof=rest sdk"`

	// Timeout bounds every upstream call
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1"`
}
