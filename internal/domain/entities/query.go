// Package entities contains core domain data structures.
package entities

// IntentKind represents the caller-facing category of a query.
type IntentKind string

// Supported intents. Unknown is reserved for callers that want to reject
// low-confidence parses; the detector itself always proposes a usable intent.
const (
	IntentFixtures    IntentKind = "fixtures"
	IntentStandings   IntentKind = "standings"
	IntentTopScorers  IntentKind = "topscorers"
	IntentPlayerStats IntentKind = "player_stats"
	IntentLive        IntentKind = "live"
	IntentTeamInfo    IntentKind = "team_info"
	IntentLeagueInfo  IntentKind = "league_info"
	IntentUnknown     IntentKind = "unknown"
)

// IntentResult is the outcome of intent detection for a single query.
type IntentResult struct {
	Primary    IntentKind `json:"primary"`
	Confidence float64    `json:"confidence"`
	Secondary  IntentKind `json:"secondary,omitempty"`
}

// Temporal describes a relative-time phrase found in a query,
// e.g. "ultimos 5" -> {Type: "last_n", Value: 5}.
type Temporal struct {
	Type  string `json:"type"`
	Value int    `json:"value,omitempty"`
}

// ExtractedEntities is the candidate entity set produced per query.
// TeamID and LeagueID are filled by an external resolver, never by the core.
// Season is always set; every other field may be absent.
type ExtractedEntities struct {
	Team       string    `json:"team,omitempty"`
	TeamID     int       `json:"team_id,omitempty"`
	League     string    `json:"league,omitempty"`
	LeagueID   int       `json:"league_id,omitempty"`
	Player     string    `json:"player,omitempty"`
	Season     int       `json:"season"`
	Temporal   *Temporal `json:"temporal,omitempty"`
	Qualifiers []string  `json:"qualifiers,omitempty"`
}

// ParsedQuery is the parse output handed to callers: the original text,
// the detected intent, the resolved entity set, and whether the query was
// recognized as a follow-up to earlier conversation.
type ParsedQuery struct {
	Original   string            `json:"original"`
	Intent     IntentResult      `json:"intent"`
	Entities   ExtractedEntities `json:"entities"`
	IsFollowUp bool              `json:"is_follow_up"`
}
