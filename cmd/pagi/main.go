package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/pagi-sec/pagi/internal/config"
	"github.com/pagi-sec/pagi/internal/crowdstrike"
	"github.com/pagi-sec/pagi/internal/jira"
	"github.com/pagi-sec/pagi/internal/observability"
	"github.com/pagi-sec/pagi/internal/provider/openrouter"
)

const defaultSystemPrompt = "You are a concise security operations assistant."

func main() {
	container := buildContainer()

	err := container.Invoke(func(logger *zap.Logger, client *openrouter.Client) error {
		defer func() { _ = logger.Sync() }()

		prompt := strings.Join(os.Args[1:], " ")
		if prompt == "" {
			return fmt.Errorf("usage: %s <prompt>", os.Args[0])
		}

		ctx := observability.WithRequestID(context.Background(), observability.GenerateRequestID())

		answer, err := client.GenerateResponse(ctx, prompt, defaultSystemPrompt, "")
		if err != nil {
			return err
		}

		fmt.Println(answer)
		return nil
	})
	if err != nil {
		// A missing OPENROUTER_API_KEY surfaces here as config.ErrMissingAPIKey;
		// the process boundary is the one place allowed to abort on it.
		log.Fatalf("pagi failed: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Chat-completion client
	if err := container.Provide(openrouter.NewClient); err != nil {
		log.Fatalf("Failed to provide OpenRouter client: %v", err)
	}

	// Placeholder collaborators share the same loaded configuration.
	if err := container.Provide(jira.NewClient); err != nil {
		log.Fatalf("Failed to provide Jira client: %v", err)
	}
	if err := container.Provide(crowdstrike.NewClient); err != nil {
		log.Fatalf("Failed to provide CrowdStrike client: %v", err)
	}

	return container
}
