package ports

import (
	"context"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// Summarizer optionally rewrites the deterministic summary in a friendlier
// tone. Implementations must not invent data that is absent from the
// result; callers fall back to the draft when the call fails.
type Summarizer interface {
	Polish(ctx context.Context, query, draft string, result *entities.Result) (string, error)
}
