package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "PREPWISE"

// Fallback environment variables consulted for the model API key, in order.
var apiKeyEnvVars = []string{
	EnvPrefix + "_LLM_API_KEY",
	"GOOGLE_GENAI_API_KEY",
	"GEMINI_API_KEY",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
//
// A .env file in the working directory is loaded first if it exists. When
// configPath is empty, prepwise.yaml is looked up in the working directory
// and silently skipped if absent; an explicit configPath must exist.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("prepwise")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(append([]string{"llm.api_key"}, apiKeyEnvVars...)...); err != nil {
		return nil, fmt.Errorf("error binding api key variables: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can populate it on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.read_timeout", "15s")
	// Generation calls can spend several seconds in backoff before answering.
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.5-flash")
	v.SetDefault("llm.json_model_name", "gemini-2.5-flash")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_initial_delay", "1s")
	v.SetDefault("llm.chat_max_output_tokens", 1000)

	v.SetDefault("database.url", "")

	v.SetDefault("cache.plans_ttl", "5m")
}
