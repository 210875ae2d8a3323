package core

import "github.com/google/uuid"

// Role identifies the author of a conversational turn.
type Role string

const (
	// RoleUser marks a turn authored by the human user.
	RoleUser Role = "user"
	// RoleAssistant marks a turn authored by the system.
	RoleAssistant Role = "assistant"
)

// Turn is a single conversational exchange entry. After being appended to a
// session it should be treated as immutable. Ordering within a session is the
// implicit timestamp: turns are append-only and persisted in order.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserTurn creates a user-authored turn.
func NewUserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// NewAssistantTurn creates an assistant-authored turn.
func NewAssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// NewID generates a new unique session identifier.
func NewID() string { return uuid.NewString() }
