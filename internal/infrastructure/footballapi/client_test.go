package footballapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/ports"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.FootballAPIConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(config.FootballAPIConfig{}, nil)
	assert.Error(t, err)
}

func TestFetch_Fixtures(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("x-rapidapi-key")
		w.Write([]byte(`{
			"errors": [],
			"response": [
				{
					"fixture": {"date": "2026-01-10T20:00:00+00:00", "status": {"short": "FT"}},
					"league": {"name": "La Liga"},
					"teams": {"home": {"name": "Barcelona"}, "away": {"name": "Sevilla"}},
					"goals": {"home": 2, "away": 0}
				},
				{
					"fixture": {"date": "2026-01-17T20:00:00+00:00", "status": {"short": "NS"}},
					"league": {"name": "La Liga"},
					"teams": {"home": {"name": "Getafe"}, "away": {"name": "Barcelona"}},
					"goals": {"home": null, "away": null}
				}
			]
		}`))
	})

	result, err := client.Fetch(context.Background(), entities.IntentFixtures, entities.ExtractedEntities{
		TeamID: 529,
		Season: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, "/fixtures", gotPath)
	assert.Equal(t, "last=10&season=2026&team=529", gotQuery)
	assert.Equal(t, "test-key", gotKey)

	require.NotNil(t, result.Fixtures)
	require.Len(t, result.Fixtures.Fixtures, 2)

	finished := result.Fixtures.Fixtures[0]
	assert.Equal(t, "Barcelona", finished.HomeTeam)
	assert.Equal(t, entities.StatusFullTime, finished.Status)
	require.NotNil(t, finished.HomeGoals)
	assert.Equal(t, 2, *finished.HomeGoals)

	scheduled := result.Fixtures.Fixtures[1]
	assert.Equal(t, entities.StatusNotStarted, scheduled.Status)
	assert.Nil(t, scheduled.HomeGoals)
}

func TestFetch_FixturesUnfilteredWidensWindow(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"errors": [], "response": []}`))
	})

	_, err := client.Fetch(context.Background(), entities.IntentFixtures, entities.ExtractedEntities{Season: 2026})
	require.NoError(t, err)

	assert.Equal(t, "last=20&season=2026", gotQuery)
}

func TestFetch_LiveIgnoresFilters(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"errors": [], "response": []}`))
	})

	_, err := client.Fetch(context.Background(), entities.IntentLive, entities.ExtractedEntities{
		TeamID: 529,
		Season: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, "live=all", gotQuery)
}

func TestFetch_Standings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/standings", r.URL.Path)
		w.Write([]byte(`{
			"errors": [],
			"response": [{
				"league": {
					"name": "La Liga",
					"standings": [[
						{"rank": 1, "team": {"name": "Real Madrid"}, "points": 45,
						 "all": {"played": 19, "win": 14, "draw": 3, "lose": 2}},
						{"rank": 2, "team": {"name": "Barcelona"}, "points": 42,
						 "all": {"played": 19, "win": 13, "draw": 3, "lose": 3}}
					]]
				}
			}]
		}`))
	})

	result, err := client.Fetch(context.Background(), entities.IntentStandings, entities.ExtractedEntities{
		LeagueID: 140,
		Season:   2026,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Standings)
	assert.Equal(t, "La Liga", result.Standings.League)
	require.Len(t, result.Standings.Table, 2)
	assert.Equal(t, entities.StandingRow{
		Rank: 1, Team: "Real Madrid", Played: 19, Wins: 14, Draws: 3, Losses: 2, Points: 45,
	}, result.Standings.Table[0])
}

func TestFetch_TopScorers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/topscorers", r.URL.Path)
		w.Write([]byte(`{
			"errors": [],
			"response": [{
				"player": {"name": "Lewandowski"},
				"statistics": [{
					"team": {"name": "Barcelona"},
					"games": {"rating": "7.9"},
					"goals": {"total": 15, "assists": 3}
				}]
			}]
		}`))
	})

	result, err := client.Fetch(context.Background(), entities.IntentTopScorers, entities.ExtractedEntities{
		LeagueID: 140,
	})
	require.NoError(t, err)

	require.NotNil(t, result.TopScorers)
	require.Len(t, result.TopScorers.Scorers, 1)
	assert.Equal(t, entities.ScorerEntry{Player: "Lewandowski", Team: "Barcelona", Goals: 15},
		result.TopScorers.Scorers[0])
}

func TestFetch_PlayerStats(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{
			"errors": [],
			"response": [{
				"player": {"name": "Vinicius Junior"},
				"statistics": [{
					"team": {"name": "Real Madrid"},
					"games": {"rating": "7.82"},
					"goals": {"total": 12, "assists": 7}
				}]
			}]
		}`))
	})

	result, err := client.Fetch(context.Background(), entities.IntentPlayerStats, entities.ExtractedEntities{
		Player: "vinicius",
		Season: 2026,
	})
	require.NoError(t, err)

	assert.Equal(t, "search=vinicius&season=2026", gotQuery)
	require.NotNil(t, result.PlayerStats)
	require.Len(t, result.PlayerStats.Players, 1)

	line := result.PlayerStats.Players[0]
	assert.Equal(t, "Vinicius Junior", line.Player)
	assert.Equal(t, 12, line.Goals)
	assert.Equal(t, 7, line.Assists)
	assert.Equal(t, 7.82, line.Rating)
}

func TestFetch_PlayerStatsRequiresName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Fetch(context.Background(), entities.IntentPlayerStats, entities.ExtractedEntities{})
	assert.Error(t, err)
}

func TestFetch_UnsupportedIntent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := client.Fetch(context.Background(), entities.IntentTeamInfo, entities.ExtractedEntities{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestFetch_ProviderErrorObjectIn200(t *testing.T) {
	// The provider reports errors inside a 200 body.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": {"token": "Error/Missing application key"}, "response": []}`))
	})

	_, err := client.Fetch(context.Background(), entities.IntentFixtures, entities.ExtractedEntities{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing application key")
}

func TestFetch_HTTPErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Fetch(context.Background(), entities.IntentFixtures, entities.ExtractedEntities{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestResolveTeam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams", r.URL.Path)
		assert.Equal(t, "Barcelona", r.URL.Query().Get("search"))
		w.Write([]byte(`{"errors": [], "response": [{"team": {"id": 529, "name": "Barcelona"}}]}`))
	})

	id, err := client.ResolveTeam(context.Background(), "Barcelona")
	require.NoError(t, err)
	assert.Equal(t, 529, id)
}

func TestResolveTeam_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [], "response": []}`))
	})

	_, err := client.ResolveTeam(context.Background(), "Nonexistent FC")
	assert.True(t, errors.Is(err, ports.ErrNotFound))
}

func TestResolveLeague(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leagues", r.URL.Path)
		w.Write([]byte(`{"errors": [], "response": [{"league": {"id": 140, "name": "La Liga"}}]}`))
	})

	id, err := client.ResolveLeague(context.Background(), "La Liga")
	require.NoError(t, err)
	assert.Equal(t, 140, id)
}
