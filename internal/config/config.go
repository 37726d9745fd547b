package config

// Supported LLM providers.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists origins allowed by CORS; "*" allows all
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider  string `mapstructure:"provider"   validate:"required,oneof=ollama openai gemini"`
	ModelName string `mapstructure:"model_name" validate:"required"`

	OllamaURL string `mapstructure:"ollama_url" validate:"required,url"`

	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"required,url"`
	OpenAIAPIKey  string `mapstructure:"openai_api_key"  validate:"required_if=Provider openai"`

	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`

	// PromptTemplatePath overrides the built-in prompt template when set
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// RequestTimeoutSeconds bounds each upstream call; zero means no bound
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

// GenerationConfig contains limits applied to incoming generation requests.
type GenerationConfig struct {
	DefaultNumCards int `mapstructure:"default_num_cards" validate:"gte=1"`
	// MaxNumCards caps numCards per request; zero disables the cap
	MaxNumCards int `mapstructure:"max_num_cards" validate:"gte=0"`
}

// DefaultModelName returns the model used for provider when none is configured.
func DefaultModelName(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return "gemma3"
	}
}
