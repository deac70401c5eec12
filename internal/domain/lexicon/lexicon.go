// Package lexicon holds the static dictionaries used for entity and action
// matching: team and league variations, action synonyms, temporal-expression
// patterns, and result qualifiers.
//
// All tables are ordered slices and are scanned front to back; the first
// matching entry wins. That ordering is the documented tie-break for
// ambiguous fragments, so entries must not be reordered casually.
package lexicon

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// TeamEntry maps a team's official name to its colloquial variations.
// Variations are matched case-insensitively as substrings of the query.
type TeamEntry struct {
	Official   string
	Variations []string
	League     string
	Country    string
}

// LeagueEntry maps a league's official name to its colloquial variations.
type LeagueEntry struct {
	Official   string
	Variations []string
	Country    string
}

// Teams is the known-team table, grouped by league.
var Teams = []TeamEntry{
	// La Liga
	{
		Official:   "Real Madrid",
		Variations: []string{"madrid", "real", "merengues", "blancos", "rm", "rmcf"},
		League:     "La Liga",
		Country:    "Spain",
	},
	{
		Official:   "Barcelona",
		Variations: []string{"barça", "barca", "fcb", "azulgrana", "culés", "blaugrana"},
		League:     "La Liga",
		Country:    "Spain",
	},
	{
		Official:   "Atletico Madrid",
		Variations: []string{"atleti", "atletico", "colchoneros", "atm"},
		League:     "La Liga",
		Country:    "Spain",
	},

	// Premier League
	{
		Official:   "Manchester United",
		Variations: []string{"united", "man utd", "man u", "mufc", "red devils", "diablos rojos"},
		League:     "Premier League",
		Country:    "England",
	},
	{
		Official:   "Manchester City",
		Variations: []string{"city", "man city", "mcfc", "citizens"},
		League:     "Premier League",
		Country:    "England",
	},
	{
		Official:   "Liverpool",
		Variations: []string{"lfc", "reds", "pool"},
		League:     "Premier League",
		Country:    "England",
	},
	{
		Official:   "Chelsea",
		Variations: []string{"blues", "cfc"},
		League:     "Premier League",
		Country:    "England",
	},
	{
		Official:   "Arsenal",
		Variations: []string{"gunners", "afc"},
		League:     "Premier League",
		Country:    "England",
	},

	// Serie A
	{
		Official:   "Juventus",
		Variations: []string{"juve", "vecchia signora", "bianconeri"},
		League:     "Serie A",
		Country:    "Italy",
	},
	{
		Official:   "Inter Milan",
		Variations: []string{"inter", "internazionale", "nerazzurri"},
		League:     "Serie A",
		Country:    "Italy",
	},
	{
		Official:   "AC Milan",
		Variations: []string{"milan", "rossoneri", "acm"},
		League:     "Serie A",
		Country:    "Italy",
	},

	// Bundesliga
	{
		Official:   "Bayern Munich",
		Variations: []string{"bayern", "fcb", "baviera"},
		League:     "Bundesliga",
		Country:    "Germany",
	},
	{
		Official:   "Borussia Dortmund",
		Variations: []string{"dortmund", "bvb", "borussen"},
		League:     "Bundesliga",
		Country:    "Germany",
	},

	// Ligue 1
	{
		Official:   "Paris Saint-Germain",
		Variations: []string{"psg", "paris", "saint germain"},
		League:     "Ligue 1",
		Country:    "France",
	},

	// South America
	{
		Official:   "Boca Juniors",
		Variations: []string{"boca", "xeneizes"},
		League:     "Liga Argentina",
		Country:    "Argentina",
	},
	{
		Official:   "River Plate",
		Variations: []string{"river", "millonarios"},
		League:     "Liga Argentina",
		Country:    "Argentina",
	},
}

// Leagues is the known-league table. La Liga's bare "liga" variation is a
// substring of several other league names ("bundesliga", "liga mx"), so the
// more specific entries come first and La Liga is scanned last.
var Leagues = []LeagueEntry{
	{
		Official:   "Premier League",
		Variations: []string{"premier", "epl", "liga inglesa", "premier league inglesa"},
		Country:    "England",
	},
	{
		Official:   "UEFA Champions League",
		Variations: []string{"champions", "ucl", "copa de europa", "champions league"},
		Country:    "Europe",
	},
	{
		Official:   "UEFA Europa League",
		Variations: []string{"europa", "uel"},
		Country:    "Europe",
	},
	{
		Official:   "Serie A",
		Variations: []string{"serie a italiana", "calcio"},
		Country:    "Italy",
	},
	{
		Official:   "Bundesliga",
		Variations: []string{"liga alemana", "bundesliga alemana"},
		Country:    "Germany",
	},
	{
		Official:   "Ligue 1",
		Variations: []string{"liga francesa", "ligue 1 francesa"},
		Country:    "France",
	},
	{
		Official:   "Liga MX",
		Variations: []string{"liga mexicana", "mexico"},
		Country:    "Mexico",
	},
	{
		Official:   "Liga BetPlay",
		Variations: []string{"liga colombia", "colombia", "betplay"},
		Country:    "Colombia",
	},
	{
		Official:   "La Liga",
		Variations: []string{"liga española", "primera division", "laliga", "liga"},
		Country:    "Spain",
	},
}

// ActionKind is a canonical action name recognized from query text.
type ActionKind string

// Canonical actions. Only the first group maps directly to an intent;
// the rest is auxiliary vocabulary the extractor and detector consult.
const (
	ActionStandings ActionKind = "standings"
	ActionScorers   ActionKind = "scorers"
	ActionFixtures  ActionKind = "fixtures"
	ActionMatches   ActionKind = "matches"
	ActionResults   ActionKind = "results"
	ActionLive      ActionKind = "live"
	ActionStats     ActionKind = "stats"
	ActionGoals     ActionKind = "goals"
	ActionAssists   ActionKind = "assists"
	ActionForm      ActionKind = "form"
	ActionNews      ActionKind = "news"
)

// actionEntry pairs a canonical action with its surface synonyms.
type actionEntry struct {
	action   ActionKind
	synonyms []string
}

// Actions is the ordered synonym table. Intent-mapped actions come first so
// that e.g. "goleadores" normalizes to scorers before the bare "gol" of the
// goals vocabulary can claim it.
var Actions = []actionEntry{
	{ActionStandings, []string{"clasificacion", "tabla", "posiciones", "tabla de posiciones"}},
	{ActionScorers, []string{"goleadores", "artilleros", "maximos goleadores", "top scorers"}},
	{ActionFixtures, []string{"calendario", "proximos partidos", "programacion"}},
	{ActionMatches, []string{"partidos", "juegos", "encuentros", "partido", "match"}},
	{ActionResults, []string{"resultados", "marcadores", "scores"}},
	{ActionLive, []string{"en vivo", "directo", "live", "ahora"}},
	{ActionStats, []string{"estadisticas", "numeros", "datos"}},
	{ActionGoals, []string{"goles", "tantos", "anotaciones", "dianas", "gol"}},
	{ActionAssists, []string{"asistencias", "pases gol", "asistencia"}},
	{ActionForm, []string{"racha", "forma", "ultimos resultados"}},
	{ActionNews, []string{"noticias", "novedades", "ultimas noticias"}},
}

// temporalEntry pairs a temporal type with its recognition pattern.
type temporalEntry struct {
	kind    string
	pattern *regexp.Regexp
}

// Temporals recognizes relative-time phrases. Patterns with a capture group
// yield a numeric value ("ultimos 5" -> last_n, 5).
var Temporals = []temporalEntry{
	{"last_n", regexp.MustCompile(`(?i)(?:ultimos?|pasados?)\s+(\d+)`)},
	{"next_n", regexp.MustCompile(`(?i)(?:proximos?|siguientes?)\s+(\d+)`)},
	{"this_week", regexp.MustCompile(`(?i)esta\s+semana`)},
	{"this_month", regexp.MustCompile(`(?i)este\s+mes`)},
	{"this_season", regexp.MustCompile(`(?i)esta\s+(?:temporada|season)`)},
	{"today", regexp.MustCompile(`(?i)hoy|today`)},
	{"yesterday", regexp.MustCompile(`(?i)ayer|yesterday`)},
	{"tomorrow", regexp.MustCompile(`(?i)mañana|tomorrow`)},
}

// qualifierEntry pairs a qualifier name with its recognition pattern.
type qualifierEntry struct {
	name    string
	pattern *regexp.Regexp
}

// Qualifiers recognizes result qualifiers. Unlike every other table this one
// is scanned exhaustively: all matching qualifiers are returned.
var Qualifiers = []qualifierEntry{
	{"home_only", regexp.MustCompile(`(?i)(?:en\s+casa|como\s+local|de\s+local)`)},
	{"away_only", regexp.MustCompile(`(?i)(?:fuera|como\s+visitante|de\s+visitante)`)},
	{"without_penalties", regexp.MustCompile(`(?i)sin\s+(?:penales|penaltis)`)},
	{"only_league", regexp.MustCompile(`(?i)solo\s+(?:en\s+)?(?:la\s+)?liga`)},
	{"only_champions", regexp.MustCompile(`(?i)solo\s+(?:en\s+)?champions`)},
}

// FindTeam returns the first team whose official name or any variation
// occurs in the query, or nil when no team matches.
func FindTeam(query string) *TeamEntry {
	lower := strings.ToLower(strings.TrimSpace(query))

	for i := range Teams {
		team := &Teams[i]
		if strings.Contains(lower, strings.ToLower(team.Official)) {
			return team
		}
		for _, variation := range team.Variations {
			if strings.Contains(lower, variation) {
				return team
			}
		}
	}

	return nil
}

// FindLeague returns the first league whose official name or any variation
// occurs in the query, or nil when no league matches.
func FindLeague(query string) *LeagueEntry {
	lower := strings.ToLower(strings.TrimSpace(query))

	for i := range Leagues {
		league := &Leagues[i]
		if strings.Contains(lower, strings.ToLower(league.Official)) {
			return league
		}
		for _, variation := range league.Variations {
			if strings.Contains(lower, variation) {
				return league
			}
		}
	}

	return nil
}

// NormalizeAction returns the canonical action for the first synonym found
// in the query. When synonyms of two actions are present, the action
// declared earlier in the table wins.
func NormalizeAction(query string) (ActionKind, bool) {
	lower := strings.ToLower(query)

	for _, entry := range Actions {
		for _, synonym := range entry.synonyms {
			if strings.Contains(lower, synonym) {
				return entry.action, true
			}
		}
	}

	return "", false
}

// ExtractTemporal returns the first temporal expression found in the query,
// capturing its numeric value when the pattern has one.
func ExtractTemporal(query string) *entities.Temporal {
	for _, entry := range Temporals {
		match := entry.pattern.FindStringSubmatch(query)
		if match == nil {
			continue
		}

		temporal := &entities.Temporal{Type: entry.kind}
		if len(match) > 1 && match[1] != "" {
			value, err := strconv.Atoi(match[1])
			if err == nil {
				temporal.Value = value
			}
		}
		return temporal
	}

	return nil
}

// ExtractQualifiers returns every qualifier matching the query, in table
// order.
func ExtractQualifiers(query string) []string {
	var found []string
	for _, entry := range Qualifiers {
		if entry.pattern.MatchString(query) {
			found = append(found, entry.name)
		}
	}
	return found
}
