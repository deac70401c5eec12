package services

import (
	"strings"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/lexicon"
)

// IntentService classifies queries into intents using ordered heuristic
// rules: the first matching rule decides, with no scoring or voting.
type IntentService struct{}

// NewIntentService creates a new intent service.
func NewIntentService() *IntentService {
	return &IntentService{}
}

// Detect classifies the query given its extracted entities. It never fails:
// when nothing matches it falls back to fixtures at low confidence, and the
// confidence value is the caller's only signal that the guess is weak.
func (s *IntentService) Detect(query string, ents entities.ExtractedEntities) entities.IntentResult {
	lower := strings.ToLower(query)

	// 1. Explicit player-stats phrasing beats everything else.
	if ents.Player != "" ||
		strings.Contains(lower, "jugador") ||
		strings.Contains(lower, "stats de") ||
		strings.Contains(lower, "estadisticas de") {
		return entities.IntentResult{Primary: entities.IntentPlayerStats, Confidence: 0.9}
	}

	// 2. Normalized action words.
	if action, ok := lexicon.NormalizeAction(query); ok {
		switch action {
		case lexicon.ActionStandings:
			return entities.IntentResult{Primary: entities.IntentStandings, Confidence: 0.9}
		case lexicon.ActionScorers:
			return entities.IntentResult{Primary: entities.IntentTopScorers, Confidence: 0.9}
		case lexicon.ActionLive:
			return entities.IntentResult{Primary: entities.IntentLive, Confidence: 0.9}
		case lexicon.ActionFixtures, lexicon.ActionMatches, lexicon.ActionResults:
			return entities.IntentResult{Primary: entities.IntentFixtures, Confidence: 0.9}
		case lexicon.ActionStats:
			if ents.Team != "" {
				return entities.IntentResult{Primary: entities.IntentTeamInfo, Confidence: 0.7}
			}
			return entities.IntentResult{Primary: entities.IntentFixtures, Confidence: 0.6}
		}
		// Auxiliary actions (goals, assists, form, news) fall through to the
		// entity-based rules below.
	}

	// 3. A bare team mention usually means matches.
	if ents.Team != "" {
		if strings.Contains(lower, "contra") || strings.Contains(lower, "vs") {
			return entities.IntentResult{Primary: entities.IntentFixtures, Confidence: 0.8}
		}
		return entities.IntentResult{
			Primary:    entities.IntentFixtures,
			Confidence: 0.6,
			Secondary:  entities.IntentTeamInfo,
		}
	}

	// 4. A bare league mention usually means standings.
	if ents.League != "" {
		return entities.IntentResult{
			Primary:    entities.IntentStandings,
			Confidence: 0.7,
			Secondary:  entities.IntentFixtures,
		}
	}

	// 5. Keyword fallback.
	if strings.Contains(lower, "tabla") || strings.Contains(lower, "posiciones") {
		return entities.IntentResult{Primary: entities.IntentStandings, Confidence: 0.8}
	}
	if strings.Contains(lower, "goleador") {
		return entities.IntentResult{Primary: entities.IntentTopScorers, Confidence: 0.8}
	}
	if strings.Contains(lower, "partido") || strings.Contains(lower, "juego") || strings.Contains(lower, "resultado") {
		return entities.IntentResult{Primary: entities.IntentFixtures, Confidence: 0.8}
	}
	if strings.Contains(lower, "vivo") || strings.Contains(lower, "directo") {
		return entities.IntentResult{Primary: entities.IntentLive, Confidence: 0.8}
	}

	// 6. The UI has no "I don't understand" path, so always propose
	// something usable.
	return entities.IntentResult{Primary: entities.IntentFixtures, Confidence: 0.3}
}
