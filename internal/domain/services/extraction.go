// Package services contains the query-understanding pipeline: entity
// extraction, intent detection, conversational context, parsing, and
// response generation.
package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/lexicon"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// playerPatterns matches phrases that introduce a player name, e.g.
// "goles de Messi" or "jugador Vinicius". The first matching pattern wins;
// later patterns are not tried once one matches.
var playerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:goles?|stats?|estadisticas?)\s+(?:de|del|de\s+la)\s+([a-záéíóúñ\s]+?)(?:\s+en|\s+de|\s+con|$)`),
	regexp.MustCompile(`(?i)jugador\s+([a-záéíóúñ\s]+?)(?:\s+en|\s+de|\s+con|$)`),
	regexp.MustCompile(`(?i)stats\s+([a-záéíóúñ\s]+?)(?:\s+en|\s+de|\s+con|$)`),
}

// seasonPattern matches a 4-digit season year.
var seasonPattern = regexp.MustCompile(`\b20\d{2}\b`)

// playerStopWords are Spanish articles and possessives that the player
// patterns occasionally capture instead of a name.
var playerStopWords = map[string]bool{
	"la": true, "el": true, "los": true, "las": true, "mi": true, "tu": true,
}

// ExtractionService produces the candidate entity set for a query using the
// lexicon tables. It is stateless and safe for concurrent use.
type ExtractionService struct{}

// NewExtractionService creates a new extraction service.
func NewExtractionService() *ExtractionService {
	return &ExtractionService{}
}

// Extract returns all entities recognized in the query. Absence of any
// entity is not an error; Season is always set, defaulting to the current
// calendar year, so downstream season defaults behave consistently.
func (s *ExtractionService) Extract(query string) entities.ExtractedEntities {
	var result entities.ExtractedEntities

	// Team first. A team mention tentatively implies its league; an explicit
	// league mention below always overrides the inference.
	if team := lexicon.FindTeam(query); team != nil {
		result.Team = team.Official
		if team.League != "" {
			result.League = team.League
		}
	}

	if league := lexicon.FindLeague(query); league != nil {
		result.League = league.Official
	}

	if player := extractPlayer(query); player != "" {
		result.Player = player
	}

	if temporal := lexicon.ExtractTemporal(query); temporal != nil {
		result.Temporal = temporal
	}

	if qualifiers := lexicon.ExtractQualifiers(query); len(qualifiers) > 0 {
		result.Qualifiers = qualifiers
	}

	result.Season = extractSeason(query)

	return result
}

// extractPlayer applies the player patterns in order and returns the first
// captured name that is not a stop word.
func extractPlayer(query string) string {
	for _, pattern := range playerPatterns {
		match := pattern.FindStringSubmatch(query)
		if match == nil {
			continue
		}

		candidate := strings.TrimSpace(match[1])
		if playerStopWords[strings.ToLower(candidate)] {
			continue
		}
		return candidate
	}
	return ""
}

// extractSeason returns the 4-digit year found in the query, or the current
// calendar year when none is present.
func extractSeason(query string) int {
	if match := seasonPattern.FindString(query); match != "" {
		year, err := strconv.Atoi(match)
		if err == nil {
			return year
		}
	}
	return timeNow().Year()
}
