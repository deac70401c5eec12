package entities

import "time"

// MessageRole identifies who authored a conversation message.
type MessageRole string

// Message roles.
const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one persisted conversation message.
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversation_id"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	CreatedAt      time.Time   `json:"created_at"`
}

// QueryRecord is the persisted trace of one parsed query: what the user
// asked, what the parser decided, and whether context resolution kicked in.
type QueryRecord struct {
	ID             string            `json:"id"`
	ConversationID string            `json:"conversation_id"`
	Query          string            `json:"query"`
	Intent         IntentKind        `json:"intent"`
	Confidence     float64           `json:"confidence"`
	Entities       ExtractedEntities `json:"entities"`
	IsFollowUp     bool              `json:"is_follow_up"`
	CreatedAt      time.Time         `json:"created_at"`
}
