package mocks

import (
	"context"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// ConversationStore is a mock implementation of ports.ConversationStore
// backed by in-memory slices.
type ConversationStore struct {
	Messages []entities.Message
	Queries  []entities.QueryRecord
	Err      error
}

// CreateConversation returns a fixed conversation ID.
func (m *ConversationStore) CreateConversation(_ context.Context, title string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "conv-1", nil
}

// SaveMessage appends the message.
func (m *ConversationStore) SaveMessage(_ context.Context, msg entities.Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, msg)
	return nil
}

// SaveQuery appends the query record.
func (m *ConversationStore) SaveQuery(_ context.Context, record entities.QueryRecord) error {
	if m.Err != nil {
		return m.Err
	}
	m.Queries = append(m.Queries, record)
	return nil
}

// RecentMessages returns the stored messages, most recent first.
func (m *ConversationStore) RecentMessages(_ context.Context, conversationID string, limit int) ([]entities.Message, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.Message
	for i := len(m.Messages) - 1; i >= 0 && len(out) < limit; i-- {
		if m.Messages[i].ConversationID == conversationID {
			out = append(out, m.Messages[i])
		}
	}
	return out, nil
}
