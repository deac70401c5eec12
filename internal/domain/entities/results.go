package entities

import "time"

// MatchStatus is the short status code of a fixture as reported by the
// data provider.
type MatchStatus string

// Fixture statuses the response generator cares about. Providers report
// more, but anything outside this set is neither finished nor live.
const (
	StatusNotStarted MatchStatus = "NS"
	StatusFirstHalf  MatchStatus = "1H"
	StatusHalfTime   MatchStatus = "HT"
	StatusSecondHalf MatchStatus = "2H"
	StatusFullTime   MatchStatus = "FT"
)

// IsLive reports whether a match with this status is in progress.
func (s MatchStatus) IsLive() bool {
	return s == StatusFirstHalf || s == StatusHalfTime || s == StatusSecondHalf
}

// Fixture is a single match, finished or not. Goals are nil until the
// match has started.
type Fixture struct {
	HomeTeam  string      `json:"home_team"`
	AwayTeam  string      `json:"away_team"`
	HomeGoals *int        `json:"home_goals,omitempty"`
	AwayGoals *int        `json:"away_goals,omitempty"`
	Status    MatchStatus `json:"status"`
	Kickoff   time.Time   `json:"kickoff"`
	League    string      `json:"league,omitempty"`
}

// FixturesData holds fixture results for the fixtures and live intents.
type FixturesData struct {
	Fixtures []Fixture `json:"fixtures"`
}

// StandingRow is one row of a league table.
type StandingRow struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Played int    `json:"played"`
	Wins   int    `json:"wins"`
	Draws  int    `json:"draws"`
	Losses int    `json:"losses"`
	Points int    `json:"points"`
}

// StandingsData holds a league table for the standings intent.
type StandingsData struct {
	League string        `json:"league,omitempty"`
	Table  []StandingRow `json:"table"`
}

// ScorerEntry is one entry of a top-scorers list, ordered by goals.
type ScorerEntry struct {
	Player string `json:"player"`
	Team   string `json:"team,omitempty"`
	Goals  int    `json:"goals"`
}

// TopScorersData holds the scorer ranking for the topscorers intent.
type TopScorersData struct {
	Scorers []ScorerEntry `json:"scorers"`
}

// PlayerStatLine is the aggregated season line for a single player.
type PlayerStatLine struct {
	Player  string  `json:"player"`
	Team    string  `json:"team,omitempty"`
	Goals   int     `json:"goals"`
	Assists int     `json:"assists"`
	Rating  float64 `json:"rating,omitempty"`
}

// PlayerStatsData holds player lines for the player_stats intent.
type PlayerStatsData struct {
	Players []PlayerStatLine `json:"players"`
}

// Result is the intent-tagged data returned by a data source. Exactly one
// branch is populated, matching the intent the fetch was made for. Adapters
// validate provider payloads while mapping into this shape so the response
// generator never inspects raw JSON.
type Result struct {
	Intent      IntentKind       `json:"intent"`
	Fixtures    *FixturesData    `json:"fixtures,omitempty"`
	Standings   *StandingsData   `json:"standings,omitempty"`
	TopScorers  *TopScorersData  `json:"top_scorers,omitempty"`
	PlayerStats *PlayerStatsData `json:"player_stats,omitempty"`
}

// DataInsights is the per-response analysis output: a count of items the
// data source returned plus human-readable highlights and suggested
// follow-up queries. Recomputed for every response, never stored.
type DataInsights struct {
	TotalItems  int      `json:"total_items"`
	Highlights  []string `json:"highlights"`
	Suggestions []string `json:"suggestions"`
}
