// Package crowdstrike holds a placeholder security-platform client. It
// consumes the shared configuration but performs no real network I/O yet.
package crowdstrike

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pagi-sec/pagi/internal/observability"
)

// Config contains CrowdStrike collaborator configuration.
type Config struct {
	APIToken string `env:"CROWDSTRIKE_API_TOKEN" envDefault:""`
	BaseURL  string `env:"CROWDSTRIKE_BASE_URL"  envDefault:"https://api.crowdstrike.com"`
}

// Client is a placeholder CrowdStrike client.
type Client struct {
	config Config
}

// NewClient creates a new CrowdStrike client from an already-loaded configuration.
func NewClient(config *Config) *Client {
	return &Client{config: *config}
}

// IsolateHost simulates network-isolating a host.
func (c *Client) IsolateHost(ctx context.Context, hostname string) error {
	if c.config.APIToken == "" {
		return errors.New("CROWDSTRIKE_API_TOKEN is not set")
	}

	logger := observability.FromContext(observability.WithCollaborator(ctx, "crowdstrike"))
	logger.Info("simulated host isolation",
		zap.String("hostname", hostname),
		zap.String("base_url", c.config.BaseURL),
	)

	return nil
}
