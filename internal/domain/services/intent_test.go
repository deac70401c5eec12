package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

func TestDetect_PlayerStats(t *testing.T) {
	svc := NewIntentService()

	tests := []struct {
		name  string
		query string
		ents  entities.ExtractedEntities
	}{
		{"extracted player", "goles de messi", entities.ExtractedEntities{Player: "messi"}},
		{"jugador keyword", "jugador del madrid", entities.ExtractedEntities{}},
		{"stats de keyword", "stats de mbappe", entities.ExtractedEntities{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Detect(tt.query, tt.ents)
			assert.Equal(t, entities.IntentPlayerStats, result.Primary)
			assert.Equal(t, 0.9, result.Confidence)
		})
	}
}

func TestDetect_ActionMapping(t *testing.T) {
	svc := NewIntentService()

	tests := []struct {
		query      string
		ents       entities.ExtractedEntities
		want       entities.IntentKind
		confidence float64
	}{
		{"clasificacion de la premier league", entities.ExtractedEntities{League: "Premier League"}, entities.IntentStandings, 0.9},
		{"goleadores de la liga", entities.ExtractedEntities{League: "La Liga"}, entities.IntentTopScorers, 0.9},
		{"en vivo", entities.ExtractedEntities{}, entities.IntentLive, 0.9},
		{"proximos partidos", entities.ExtractedEntities{}, entities.IntentFixtures, 0.9},
		{"resultados", entities.ExtractedEntities{}, entities.IntentFixtures, 0.9},
	}

	for _, tt := range tests {
		result := svc.Detect(tt.query, tt.ents)
		assert.Equal(t, tt.want, result.Primary, "query %q", tt.query)
		assert.Equal(t, tt.confidence, result.Confidence, "query %q", tt.query)
	}
}

func TestDetect_StatsActionDependsOnTeam(t *testing.T) {
	svc := NewIntentService()

	withTeam := svc.Detect("numeros del madrid", entities.ExtractedEntities{Team: "Real Madrid"})
	assert.Equal(t, entities.IntentTeamInfo, withTeam.Primary)
	assert.Equal(t, 0.7, withTeam.Confidence)

	withoutTeam := svc.Detect("numeros", entities.ExtractedEntities{})
	assert.Equal(t, entities.IntentFixtures, withoutTeam.Primary)
	assert.Equal(t, 0.6, withoutTeam.Confidence)
}

func TestDetect_TeamInference(t *testing.T) {
	svc := NewIntentService()

	versus := svc.Detect("madrid vs barcelona", entities.ExtractedEntities{Team: "Real Madrid"})
	assert.Equal(t, entities.IntentFixtures, versus.Primary)
	assert.Equal(t, 0.8, versus.Confidence)
	assert.Empty(t, versus.Secondary)

	bare := svc.Detect("el madrid", entities.ExtractedEntities{Team: "Real Madrid"})
	assert.Equal(t, entities.IntentFixtures, bare.Primary)
	assert.Equal(t, 0.6, bare.Confidence)
	assert.Equal(t, entities.IntentTeamInfo, bare.Secondary)
}

func TestDetect_LeagueInference(t *testing.T) {
	svc := NewIntentService()

	result := svc.Detect("la premier", entities.ExtractedEntities{League: "Premier League"})
	assert.Equal(t, entities.IntentStandings, result.Primary)
	assert.Equal(t, 0.7, result.Confidence)
	assert.Equal(t, entities.IntentFixtures, result.Secondary)
}

func TestDetect_KeywordFallback(t *testing.T) {
	svc := NewIntentService()

	// "goleador" and the singular "juego"/"resultado" are not action
	// synonyms, so they reach the fallback keywords instead of rule 2.
	tests := []struct {
		query string
		want  entities.IntentKind
	}{
		{"quien es el goleador", entities.IntentTopScorers},
		{"algun juego hoy?", entities.IntentFixtures},
		{"el resultado final", entities.IntentFixtures},
	}

	for _, tt := range tests {
		result := svc.Detect(tt.query, entities.ExtractedEntities{})
		assert.Equal(t, tt.want, result.Primary, "query %q", tt.query)
		assert.Equal(t, 0.8, result.Confidence, "query %q", tt.query)
	}
}

func TestDetect_DefaultFallback(t *testing.T) {
	svc := NewIntentService()

	result := svc.Detect("hola", entities.ExtractedEntities{})
	assert.Equal(t, entities.IntentFixtures, result.Primary)
	assert.Equal(t, 0.3, result.Confidence)
}
