package models

import "time"

// ChatLogEntry is a single successful prompt/response exchange with the
// completion API. The author fields are a snapshot of the user at chat time.
type ChatLogEntry struct {
	ID int64 `json:"-"`

	UserID    int64  `json:"-"`
	Email     string `json:"-"`
	FirstName string `json:"-"`
	LastName  string `json:"-"`

	Prompt   string `json:"prompt"`
	Response string `json:"response"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the ChatLogEntry model.
func (c ChatLogEntry) TableName() string {
	return "ai_chat_log"
}

// ChatMessage is a role-tagged message of a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat message roles understood by the completion API.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// CompletionRequest is the JSON body sent to the completion API.
type CompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// CompletionResponse is the subset of the completion API answer the service reads.
type CompletionResponse struct {
	Choices []CompletionChoice `json:"choices"`
}

// CompletionChoice is one generated alternative of a completion.
type CompletionChoice struct {
	Message *ChatMessage `json:"message"`
}

// FirstContent returns the text of the first choice, or "" when the
// response carries no usable content.
func (r CompletionResponse) FirstContent() string {
	if len(r.Choices) == 0 || r.Choices[0].Message == nil {
		return ""
	}
	return r.Choices[0].Message.Content
}
