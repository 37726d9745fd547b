package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// configEnvVars lists every variable Load reads, so tests start from a clean slate.
var configEnvVars = []string{
	"SCRY_SERVER_PORT",
	"SCRY_SERVER_LOG_LEVEL",
	"SCRY_SERVER_CORS_ALLOWED_ORIGINS",
	"SCRY_LLM_PROVIDER",
	"SCRY_LLM_MODEL_NAME",
	"SCRY_LLM_OLLAMA_URL",
	"SCRY_LLM_OPENAI_BASE_URL",
	"SCRY_LLM_OPENAI_API_KEY",
	"SCRY_LLM_GEMINI_API_KEY",
	"SCRY_LLM_PROMPT_TEMPLATE_PATH",
	"SCRY_LLM_REQUEST_TIMEOUT_SECONDS",
	"SCRY_GENERATION_DEFAULT_NUM_CARDS",
	"SCRY_GENERATION_MAX_NUM_CARDS",
}

// setupEnv clears all config variables and then sets envVars for the
// duration of the test.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, name := range configEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies that Load falls back to the documented defaults
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := load("")

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, "gemma3", cfg.LLM.ModelName)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.OllamaURL)
	assert.Equal(t, 0, cfg.LLM.RequestTimeoutSeconds)
	assert.Equal(t, 5, cfg.Generation.DefaultNumCards)
	assert.Equal(t, 20, cfg.Generation.MaxNumCards)
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"SCRY_SERVER_PORT":                  "9090",
		"SCRY_SERVER_LOG_LEVEL":             "debug",
		"SCRY_SERVER_CORS_ALLOWED_ORIGINS":  "http://localhost:3000,https://cards.example.com",
		"SCRY_LLM_PROVIDER":                 "OpenAI",
		"SCRY_LLM_OPENAI_API_KEY":           "test-api-key",
		"SCRY_LLM_OPENAI_BASE_URL":          "https://llm.example.com/v1",
		"SCRY_LLM_REQUEST_TIMEOUT_SECONDS":  "30",
		"SCRY_GENERATION_DEFAULT_NUM_CARDS": "3",
		"SCRY_GENERATION_MAX_NUM_CARDS":     "10",
	})

	cfg, err := load("")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "https://cards.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider, "provider is normalized to lower case")
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.ModelName, "model defaults per provider")
	assert.Equal(t, "test-api-key", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLM.OpenAIBaseURL)
	assert.Equal(t, 30, cfg.LLM.RequestTimeoutSeconds)
	assert.Equal(t, 3, cfg.Generation.DefaultNumCards)
	assert.Equal(t, 10, cfg.Generation.MaxNumCards)
}

func TestLoadExplicitModel(t *testing.T) {
	setupEnv(t, map[string]string{
		"SCRY_LLM_PROVIDER":       "gemini",
		"SCRY_LLM_GEMINI_API_KEY": "gemini-key",
		"SCRY_LLM_MODEL_NAME":     "gemini-1.5-pro",
	})

	cfg, err := load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, "gemini-key", cfg.LLM.GeminiAPIKey)
}

func TestLoadFromEnvFile(t *testing.T) {
	setupEnv(t, map[string]string{
		"SCRY_SERVER_PORT": "7000",
	})

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SCRY_SERVER_PORT=6000\nSCRY_LLM_MODEL_NAME=llama3\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	cfg, err := load(envFile)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port, "process environment wins over .env")
	assert.Equal(t, "llama3", cfg.LLM.ModelName)
}

func TestLoadMissingEnvFile(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "openai without api key",
			envVars: map[string]string{
				"SCRY_LLM_PROVIDER": "openai",
			},
		},
		{
			name: "gemini without api key",
			envVars: map[string]string{
				"SCRY_LLM_PROVIDER": "gemini",
			},
		},
		{
			name: "unknown provider",
			envVars: map[string]string{
				"SCRY_LLM_PROVIDER": "bard",
			},
		},
		{
			name: "invalid port number",
			envVars: map[string]string{
				"SCRY_SERVER_PORT": "999999",
			},
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"SCRY_SERVER_LOG_LEVEL": "invalid-level",
			},
		},
		{
			name: "invalid ollama url",
			envVars: map[string]string{
				"SCRY_LLM_OLLAMA_URL": "not a url",
			},
		},
		{
			name: "negative timeout",
			envVars: map[string]string{
				"SCRY_LLM_REQUEST_TIMEOUT_SECONDS": "-1",
			},
		},
		{
			name: "zero default card count",
			envVars: map[string]string{
				"SCRY_GENERATION_DEFAULT_NUM_CARDS": "0",
			},
		},
		{
			name: "default above maximum",
			envVars: map[string]string{
				"SCRY_GENERATION_DEFAULT_NUM_CARDS": "30",
				"SCRY_GENERATION_MAX_NUM_CARDS":     "20",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := load("")

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestDefaultModelName(t *testing.T) {
	assert.Equal(t, "gemma3", DefaultModelName(ProviderOllama))
	assert.Equal(t, "gpt-4o-mini", DefaultModelName(ProviderOpenAI))
	assert.Equal(t, "gemini-2.0-flash", DefaultModelName(ProviderGemini))
}
