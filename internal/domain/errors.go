package domain

import (
	"errors"
	"fmt"
)

// ErrNoChoices indicates the remote service answered successfully but
// returned an empty choices list.
var ErrNoChoices = errors.New("no completion returned")

// APIStatusError reports a non-success HTTP status from the remote
// chat-completions endpoint. Body holds a truncated copy of the response
// body; it never contains the bearer credential.
type APIStatusError struct {
	StatusCode int
	Body       string
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("chat completions API returned status %d: %s", e.StatusCode, e.Body)
}
