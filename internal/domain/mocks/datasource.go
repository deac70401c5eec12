// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/ports"
)

// DataSource is a mock implementation of ports.DataSource.
type DataSource struct {
	Result *entities.Result
	Err    error

	// LastIntent and LastEntities record the most recent Fetch call.
	LastIntent   entities.IntentKind
	LastEntities entities.ExtractedEntities
}

// Fetch returns the configured result or error.
func (m *DataSource) Fetch(_ context.Context, intent entities.IntentKind, ents entities.ExtractedEntities) (*entities.Result, error) {
	m.LastIntent = intent
	m.LastEntities = ents
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// EntityResolver is a mock implementation of ports.EntityResolver.
type EntityResolver struct {
	TeamIDs   map[string]int
	LeagueIDs map[string]int
	Err       error
}

// ResolveTeam returns the configured team ID or ErrNotFound.
func (m *EntityResolver) ResolveTeam(_ context.Context, name string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if id, ok := m.TeamIDs[name]; ok {
		return id, nil
	}
	return 0, ports.ErrNotFound
}

// ResolveLeague returns the configured league ID or ErrNotFound.
func (m *EntityResolver) ResolveLeague(_ context.Context, name string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if id, ok := m.LeagueIDs[name]; ok {
		return id, nil
	}
	return 0, ports.ErrNotFound
}
