package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pagi-sec/pagi/internal/config"
	"github.com/stretchr/testify/require"
)

// chdir stands in for testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test-key")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify the credential and the defaults
		require.Equal(t, "sk-or-test-key", cfg.OpenRouter.APIKey)
		require.Equal(t, "openai/gpt-4o-mini", cfg.OpenRouter.DefaultModel)
		require.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
		require.Empty(t, cfg.Jira.APIToken)
		require.Equal(t, "https://jira.example.com", cfg.Jira.BaseURL)
		require.Empty(t, cfg.Crowdstrike.APIToken)
		require.Equal(t, "https://api.crowdstrike.com", cfg.Crowdstrike.BaseURL)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test-key")
		t.Setenv("OPENROUTER_DEFAULT_MODEL", "anthropic/claude-3-haiku")
		t.Setenv("OPENROUTER_BASE_URL", "https://test.openrouter.ai/api/v1")
		t.Setenv("JIRA_API_TOKEN", "jira-token")
		t.Setenv("JIRA_BASE_URL", "https://jira.internal.example.com")
		t.Setenv("CROWDSTRIKE_API_TOKEN", "cs-token")
		t.Setenv("CROWDSTRIKE_BASE_URL", "https://api.us-2.crowdstrike.com")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		require.Equal(t, "sk-or-test-key", cfg.OpenRouter.APIKey)
		require.Equal(t, "anthropic/claude-3-haiku", cfg.OpenRouter.DefaultModel)
		require.Equal(t, "https://test.openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
		require.Equal(t, "jira-token", cfg.Jira.APIToken)
		require.Equal(t, "https://jira.internal.example.com", cfg.Jira.BaseURL)
		require.Equal(t, "cs-token", cfg.Crowdstrike.APIToken)
		require.Equal(t, "https://api.us-2.crowdstrike.com", cfg.Crowdstrike.BaseURL)
	})

	t.Run("should fail when the API key is missing", func(t *testing.T) {
		os.Clearenv()

		cfg, err := config.Load()

		require.ErrorIs(t, err, config.ErrMissingAPIKey)
		require.Nil(t, cfg)
	})

	t.Run("should fill gaps from .env without overriding the shell", func(t *testing.T) {
		os.Clearenv()
		chdir(t, t.TempDir())

		dotenv := "OPENROUTER_API_KEY=file-key\nOPENROUTER_DEFAULT_MODEL=file-model\n"
		require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte(dotenv), 0o600))

		// The shell already defines the model; the file must not win.
		t.Setenv("OPENROUTER_DEFAULT_MODEL", "shell-model")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.Equal(t, "file-key", cfg.OpenRouter.APIKey)
		require.Equal(t, "shell-model", cfg.OpenRouter.DefaultModel)
	})

	t.Run("should ignore a missing .env file", func(t *testing.T) {
		os.Clearenv()
		chdir(t, t.TempDir())
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test-key")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.Equal(t, "sk-or-test-key", cfg.OpenRouter.APIKey)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("should panic when the API key is missing", func(t *testing.T) {
		os.Clearenv()

		require.Panics(t, func() { config.MustLoad() })
	})

	t.Run("should return config when the API key is set", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("OPENROUTER_API_KEY", "sk-or-test-key")

		cfg := config.MustLoad()

		require.NotNil(t, cfg)
		require.Equal(t, "sk-or-test-key", cfg.OpenRouter.APIKey)
	})
}
