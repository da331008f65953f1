package domain

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// ChatRequest is the outbound chat-completions request body.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// ChatResponse is the subset of the chat-completions response body that the
// client consumes. Every other field the remote service returns is ignored.
type ChatResponse struct {
	ID      string   `json:"id,omitempty"`
	Choices []Choice `json:"choices"`
}

// Choice is a single completion choice. Only the first choice of a response
// is ever read.
type Choice struct {
	Message ChoiceMessage `json:"message"`
}

// ChoiceMessage carries the generated text of a choice.
type ChoiceMessage struct {
	Content string `json:"content"`
}
