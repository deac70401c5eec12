package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTeam_OfficialName(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Real Madrid", "Real Madrid"},
		{"partidos de barcelona", "Barcelona"},
		{"como va el LIVERPOOL", "Liverpool"},
	}

	for _, tt := range tests {
		team := FindTeam(tt.query)
		require.NotNil(t, team, "query %q", tt.query)
		assert.Equal(t, tt.want, team.Official, "query %q", tt.query)
	}
}

func TestFindTeam_Variations(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"como van los merengues", "Real Madrid"},
		{"partidos del barça", "Barcelona"},
		{"resultados de la juve", "Juventus"},
		{"el bvb en casa", "Borussia Dortmund"},
		{"PSG contra lyon", "Paris Saint-Germain"},
	}

	for _, tt := range tests {
		team := FindTeam(tt.query)
		require.NotNil(t, team, "query %q", tt.query)
		assert.Equal(t, tt.want, team.Official, "query %q", tt.query)
	}
}

func TestFindTeam_FirstEntryWinsTies(t *testing.T) {
	// "madrid" is a Real Madrid variation and Real Madrid is declared
	// before Atletico Madrid, so the ambiguous fragment resolves to Real.
	team := FindTeam("equipos de madrid")
	require.NotNil(t, team)
	assert.Equal(t, "Real Madrid", team.Official)
}

func TestFindTeam_NoMatch(t *testing.T) {
	assert.Nil(t, FindTeam("que hora es"))
}

func TestFindLeague(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"clasificacion de la premier league", "Premier League"},
		{"goleadores de la liga", "La Liga"},
		{"tabla de la bundesliga", "Bundesliga"},
		{"resultados champions", "UEFA Champions League"},
		{"posiciones liga mx", "Liga MX"},
	}

	for _, tt := range tests {
		league := FindLeague(tt.query)
		require.NotNil(t, league, "query %q", tt.query)
		assert.Equal(t, tt.want, league.Official, "query %q", tt.query)
	}
}

func TestFindLeague_BareLigaDoesNotShadowOtherLeagues(t *testing.T) {
	// "bundesliga" contains "liga"; the table order must still resolve it
	// to the Bundesliga, not La Liga.
	league := FindLeague("la bundesliga")
	require.NotNil(t, league)
	assert.Equal(t, "Bundesliga", league.Official)
}

func TestNormalizeAction(t *testing.T) {
	tests := []struct {
		query string
		want  ActionKind
	}{
		{"clasificacion de la liga", ActionStandings},
		{"tabla de posiciones", ActionStandings},
		{"goleadores de la liga", ActionScorers},
		{"proximos partidos", ActionFixtures},
		{"partidos de hoy", ActionMatches},
		{"resultados de ayer", ActionResults},
		{"en vivo", ActionLive},
		{"estadisticas del equipo", ActionStats},
		{"racha del madrid", ActionForm},
	}

	for _, tt := range tests {
		action, ok := NormalizeAction(tt.query)
		require.True(t, ok, "query %q", tt.query)
		assert.Equal(t, tt.want, action, "query %q", tt.query)
	}
}

func TestNormalizeAction_TableOrderBreaksTies(t *testing.T) {
	// "clasificacion" (standings) and "goleadores" (scorers) are both
	// present; standings is declared first and wins.
	action, ok := NormalizeAction("clasificacion y goleadores")
	require.True(t, ok)
	assert.Equal(t, ActionStandings, action)
}

func TestNormalizeAction_NoMatch(t *testing.T) {
	_, ok := NormalizeAction("hola")
	assert.False(t, ok)
}

func TestExtractTemporal(t *testing.T) {
	temporal := ExtractTemporal("ultimos 5 partidos")
	require.NotNil(t, temporal)
	assert.Equal(t, "last_n", temporal.Type)
	assert.Equal(t, 5, temporal.Value)

	temporal = ExtractTemporal("proximos 3 juegos")
	require.NotNil(t, temporal)
	assert.Equal(t, "next_n", temporal.Type)
	assert.Equal(t, 3, temporal.Value)

	temporal = ExtractTemporal("partidos de HOY")
	require.NotNil(t, temporal)
	assert.Equal(t, "today", temporal.Type)
	assert.Zero(t, temporal.Value)

	assert.Nil(t, ExtractTemporal("clasificacion"))
}

func TestExtractQualifiers(t *testing.T) {
	qualifiers := ExtractQualifiers("partidos en casa sin penales")
	assert.Equal(t, []string{"home_only", "without_penalties"}, qualifiers)

	assert.Empty(t, ExtractQualifiers("clasificacion"))
}

func TestExtractQualifiers_AllMatchesReturned(t *testing.T) {
	// Unlike the other tables, qualifiers are exhaustive.
	qualifiers := ExtractQualifiers("como local y fuera, solo en la liga")
	assert.Equal(t, []string{"home_only", "away_only", "only_league"}, qualifiers)
}

func TestTeamsCarryLeagues(t *testing.T) {
	for _, team := range Teams {
		assert.NotEmpty(t, team.Official)
		assert.NotEmpty(t, team.Variations, "team %s", team.Official)
	}
}
