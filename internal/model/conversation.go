package model

// Role tags one side of a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is a single role-tagged message in a conversation.
// Turns are immutable once created.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
