package mocks

import (
	"context"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// Summarizer is a mock implementation of ports.Summarizer.
type Summarizer struct {
	Polished string
	Err      error
}

// Polish returns the configured text, or the draft when none is set.
func (m *Summarizer) Polish(_ context.Context, query, draft string, result *entities.Result) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Polished == "" {
		return draft, nil
	}
	return m.Polished, nil
}
