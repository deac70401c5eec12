// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"errors"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// ErrNotFound is returned by resolvers when a name matches nothing.
// Callers treat it as non-fatal: the numeric ID is simply left unset.
var ErrNotFound = errors.New("not found")

// DataSource fetches football data for an intent and entity set. The entity
// set is passed through unchanged; implementations must fail with a
// descriptive error when they do not support the intent or the remote call
// fails, and the returned result is never mutated by callers.
type DataSource interface {
	Fetch(ctx context.Context, intent entities.IntentKind, ents entities.ExtractedEntities) (*entities.Result, error)
}

// EntityResolver maps team and league names to the provider's numeric IDs.
// A failed lookup returns ErrNotFound.
type EntityResolver interface {
	ResolveTeam(ctx context.Context, name string) (int, error)
	ResolveLeague(ctx context.Context, name string) (int, error)
}
