package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the config reads,
// e.g. SCRY_LLM_PROVIDER for llm.provider.
const EnvPrefix = "SCRY"

// defaults lists every configuration key with its default value. Every key
// must appear here so that viper resolves it from the environment.
var defaults = map[string]interface{}{
	"server.port":                 5000,
	"server.log_level":            "info",
	"server.cors_allowed_origins": []string{"*"},

	"llm.provider":                "ollama",
	"llm.model_name":              "",
	"llm.ollama_url":              "http://localhost:11434",
	"llm.openai_base_url":         "https://api.openai.com/v1",
	"llm.openai_api_key":          "",
	"llm.gemini_api_key":          "",
	"llm.prompt_template_path":    "",
	"llm.request_timeout_seconds": 0,

	"generation.default_num_cards": 5,
	"generation.max_num_cards":     20,
}

// Load configuration from environment variables and optionally a .env file
// and a config.yaml in the working directory. Real environment variables
// take precedence over .env entries, which take precedence over config.yaml.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if cfg.LLM.ModelName == "" {
		cfg.LLM.ModelName = DefaultModelName(cfg.LLM.Provider)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags and cross-field rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Generation.MaxNumCards > 0 && cfg.Generation.DefaultNumCards > cfg.Generation.MaxNumCards {
		return fmt.Errorf(
			"config validation failed: generation.default_num_cards (%d) exceeds generation.max_num_cards (%d)",
			cfg.Generation.DefaultNumCards,
			cfg.Generation.MaxNumCards,
		)
	}

	return nil
}

// loadEnvFile exports the entries of a dotenv file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
