package domain

import "context"

// ChatProvider generates a single chat completion per call.
type ChatProvider interface {
	// GenerateResponse sends one request to the remote chat-completions
	// endpoint and returns the first choice's message text. An empty model
	// falls back to the configured default.
	GenerateResponse(ctx context.Context, prompt, systemPrompt, model string) (string, error)
}

// IssueTracker files issues with an external tracker.
type IssueTracker interface {
	// CreateIssue creates an issue with the given summary.
	CreateIssue(ctx context.Context, summary string) error
}

// SecurityPlatform performs containment actions on an external EDR platform.
type SecurityPlatform interface {
	// IsolateHost network-isolates the host with the given hostname.
	IsolateHost(ctx context.Context, hostname string) error
}
