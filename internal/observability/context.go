package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDKey holds the unique request identifier.
	RequestIDKey contextKey = "request_id"

	// ModelKey holds the model name for this request.
	ModelKey contextKey = "model"

	// CollaboratorKey holds the name of the external collaborator being called.
	CollaboratorKey contextKey = "collaborator"
)

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithModel injects model name into context.
func WithModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, ModelKey, model)
}

// WithCollaborator injects the collaborator name into context.
func WithCollaborator(ctx context.Context, collaborator string) context.Context {
	return context.WithValue(ctx, CollaboratorKey, collaborator)
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetModel extracts model name from context.
func GetModel(ctx context.Context) string {
	if model, ok := ctx.Value(ModelKey).(string); ok {
		return model
	}
	return ""
}

// GetCollaborator extracts the collaborator name from context.
func GetCollaborator(ctx context.Context) string {
	if collaborator, ok := ctx.Value(CollaboratorKey).(string); ok {
		return collaborator
	}
	return ""
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}
