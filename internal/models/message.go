// ABOUTME: ChatMessage model for the conversation history.
// ABOUTME: Append-only sequence; a bounded suffix is persisted.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which side of the conversation wrote a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn in the conversation history.
type ChatMessage struct {
	ID        uuid.UUID
	Role      Role
	Content   string
	Timestamp time.Time
}

// NewChatMessage creates a message with a generated ID and the current
// timestamp.
func NewChatMessage(role Role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
