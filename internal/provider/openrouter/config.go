package openrouter

// Config contains OpenRouter provider configuration.
// APIKey is the bearer secret for the chat-completions endpoint and must
// never appear in logs or error messages.
type Config struct {
	APIKey       string `env:"OPENROUTER_API_KEY"`
	DefaultModel string `env:"OPENROUTER_DEFAULT_MODEL" envDefault:"openai/gpt-4o-mini"`
	BaseURL      string `env:"OPENROUTER_BASE_URL"      envDefault:"https://openrouter.ai/api/v1"`
}
