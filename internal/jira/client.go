// Package jira holds a placeholder issue-tracker client. It consumes the
// shared configuration but performs no real network I/O yet.
package jira

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pagi-sec/pagi/internal/observability"
)

// Config contains Jira collaborator configuration.
type Config struct {
	APIToken string `env:"JIRA_API_TOKEN" envDefault:""`
	BaseURL  string `env:"JIRA_BASE_URL"  envDefault:"https://jira.example.com"`
}

// Client is a placeholder Jira client.
type Client struct {
	config Config
}

// NewClient creates a new Jira client from an already-loaded configuration.
func NewClient(config *Config) *Client {
	return &Client{config: *config}
}

// CreateIssue simulates creating a Jira issue.
func (c *Client) CreateIssue(ctx context.Context, summary string) error {
	if c.config.APIToken == "" {
		return errors.New("JIRA_API_TOKEN is not set")
	}

	logger := observability.FromContext(observability.WithCollaborator(ctx, "jira"))
	logger.Info("simulated issue creation",
		zap.String("summary", summary),
		zap.String("base_url", c.config.BaseURL),
	)

	return nil
}
