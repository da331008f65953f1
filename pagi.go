// Package pagi is the top-level entry point for the PAGI external API and
// LLM provider library. It centralizes secure configuration loading (via
// `.env` plus environment variables) and construction of the outbound
// clients that share that configuration:
//
//	provider, err := pagi.NewLLMProvider()
//	answer, err := provider.GenerateResponse(ctx, prompt, systemPrompt, "")
package pagi

import (
	"github.com/pagi-sec/pagi/internal/config"
	"github.com/pagi-sec/pagi/internal/crowdstrike"
	"github.com/pagi-sec/pagi/internal/domain"
	"github.com/pagi-sec/pagi/internal/jira"
	"github.com/pagi-sec/pagi/internal/provider/openrouter"
)

// Config is the validated, immutable snapshot of environment-derived
// settings and secrets.
type Config = config.Config

// LoadConfig loads and validates configuration from the environment.
// It returns config.ErrMissingAPIKey when the mandatory chat-provider
// credential is absent.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// NewLLMProvider loads configuration from the environment and constructs a
// chat-completion client from it. Prefer NewLLMProviderFromConfig when the
// configuration is already loaded.
func NewLLMProvider() (domain.ChatProvider, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewLLMProviderFromConfig(cfg)
}

// NewLLMProviderFromConfig constructs a chat-completion client from an
// already-loaded configuration.
func NewLLMProviderFromConfig(cfg *Config) (domain.ChatProvider, error) {
	client, err := openrouter.NewClient(&cfg.OpenRouter)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewIssueTracker constructs the placeholder issue-tracker collaborator
// from an already-loaded configuration.
func NewIssueTracker(cfg *Config) domain.IssueTracker {
	return jira.NewClient(&cfg.Jira)
}

// NewSecurityPlatform constructs the placeholder security-platform
// collaborator from an already-loaded configuration.
func NewSecurityPlatform(cfg *Config) domain.SecurityPlatform {
	return crowdstrike.NewClient(&cfg.Crowdstrike)
}
