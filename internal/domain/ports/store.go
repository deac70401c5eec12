package ports

import (
	"context"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// ConversationStore persists conversations, messages, and parsed queries.
// The query-understanding core never reads it back; it exists so the caller
// can reload history and audit what the parser decided.
type ConversationStore interface {
	// CreateConversation registers a new conversation and returns its ID.
	CreateConversation(ctx context.Context, title string) (string, error)

	// SaveMessage appends a message to a conversation.
	SaveMessage(ctx context.Context, msg entities.Message) error

	// SaveQuery records the parse result for one user query.
	SaveQuery(ctx context.Context, record entities.QueryRecord) error

	// RecentMessages returns up to limit messages, most recent first.
	RecentMessages(ctx context.Context, conversationID string, limit int) ([]entities.Message, error)
}
