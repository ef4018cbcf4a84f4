package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Cache    CacheConfig    `mapstructure:"cache"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// LogFile enables a rotating file sink in addition to stdout when set.
	LogFile         string        `mapstructure:"log_file"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains all hosted model settings.
type LLMConfig struct {
	// APIKey may be empty. The server still starts and every generation
	// call fails until a key is configured.
	APIKey              string        `mapstructure:"api_key"`
	ModelName           string        `mapstructure:"model_name"             validate:"required"`
	JSONModelName       string        `mapstructure:"json_model_name"        validate:"required"`
	MaxRetries          int           `mapstructure:"max_retries"            validate:"gte=0"`
	RetryInitialDelay   time.Duration `mapstructure:"retry_initial_delay"    validate:"gt=0"`
	ChatMaxOutputTokens int32         `mapstructure:"chat_max_output_tokens" validate:"gt=0"`
}

// DatabaseConfig contains database settings. The database is optional;
// without it the plan catalog is served from built-in defaults.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// CacheConfig controls in-process caching.
type CacheConfig struct {
	PlansTTL time.Duration `mapstructure:"plans_ttl" validate:"gt=0"`
}

// DatabaseEnabled reports whether a database URL is configured.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.URL != ""
}
