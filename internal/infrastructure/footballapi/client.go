// Package footballapi provides DataSource and EntityResolver
// implementations backed by the api-football v3 HTTP API.
package footballapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/ports"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/config"
)

// defaultFixtureWindow limits how many past fixtures are requested when the
// query carries a team or league filter; unfiltered queries get a wider
// window.
const (
	defaultFixtureWindow    = 10
	unfilteredFixtureWindow = 20
)

// Client calls the api-football v3 API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a new api-football client.
func NewClient(cfg config.FootballAPIConfig, log *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("football API key is required (set FOOTBALL_API_KEY)")
	}
	if log == nil {
		log = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api-football-v1.p.rapidapi.com/v3"
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// Fetch retrieves data for the given intent, passing the entity set through
// as query filters. Unsupported intents fail with a descriptive error.
func (c *Client) Fetch(ctx context.Context, intent entities.IntentKind, ents entities.ExtractedEntities) (*entities.Result, error) {
	switch intent {
	case entities.IntentFixtures:
		return c.fetchFixtures(ctx, intent, ents, false)
	case entities.IntentLive:
		return c.fetchFixtures(ctx, intent, ents, true)
	case entities.IntentStandings:
		return c.fetchStandings(ctx, ents)
	case entities.IntentTopScorers:
		return c.fetchTopScorers(ctx, ents)
	case entities.IntentPlayerStats:
		return c.fetchPlayerStats(ctx, ents)
	default:
		return nil, fmt.Errorf("intent %q is not supported by api-football", intent)
	}
}

// ResolveTeam returns the provider ID for a team name.
func (c *Client) ResolveTeam(ctx context.Context, name string) (int, error) {
	params := url.Values{}
	params.Set("search", name)

	var payload struct {
		Response []struct {
			Team struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"team"`
		} `json:"response"`
	}
	if err := c.get(ctx, "teams", params, &payload); err != nil {
		return 0, err
	}

	if len(payload.Response) == 0 {
		return 0, ports.ErrNotFound
	}
	return payload.Response[0].Team.ID, nil
}

// ResolveLeague returns the provider ID for a league name.
func (c *Client) ResolveLeague(ctx context.Context, name string) (int, error) {
	params := url.Values{}
	params.Set("search", name)

	var payload struct {
		Response []struct {
			League struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"league"`
		} `json:"response"`
	}
	if err := c.get(ctx, "leagues", params, &payload); err != nil {
		return 0, err
	}

	if len(payload.Response) == 0 {
		return 0, ports.ErrNotFound
	}
	return payload.Response[0].League.ID, nil
}

// fixturePayload is the provider shape for fixture lists.
type fixturePayload struct {
	Response []struct {
		Fixture struct {
			Date   string `json:"date"`
			Status struct {
				Short string `json:"short"`
			} `json:"status"`
		} `json:"fixture"`
		League struct {
			Name string `json:"name"`
		} `json:"league"`
		Teams struct {
			Home struct {
				Name string `json:"name"`
			} `json:"home"`
			Away struct {
				Name string `json:"name"`
			} `json:"away"`
		} `json:"teams"`
		Goals struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"goals"`
	} `json:"response"`
}

func (c *Client) fetchFixtures(ctx context.Context, intent entities.IntentKind, ents entities.ExtractedEntities, live bool) (*entities.Result, error) {
	params := url.Values{}

	if live {
		params.Set("live", "all")
	} else {
		if ents.TeamID != 0 {
			params.Set("team", strconv.Itoa(ents.TeamID))
		}
		if ents.LeagueID != 0 {
			params.Set("league", strconv.Itoa(ents.LeagueID))
		}
		if ents.Season != 0 {
			params.Set("season", strconv.Itoa(ents.Season))
		}
		if ents.TeamID == 0 && ents.LeagueID == 0 {
			params.Set("last", strconv.Itoa(unfilteredFixtureWindow))
		} else {
			params.Set("last", strconv.Itoa(defaultFixtureWindow))
		}
	}

	var payload fixturePayload
	if err := c.get(ctx, "fixtures", params, &payload); err != nil {
		return nil, err
	}

	data := &entities.FixturesData{Fixtures: make([]entities.Fixture, 0, len(payload.Response))}
	for _, item := range payload.Response {
		kickoff, _ := time.Parse(time.RFC3339, item.Fixture.Date)
		data.Fixtures = append(data.Fixtures, entities.Fixture{
			HomeTeam:  item.Teams.Home.Name,
			AwayTeam:  item.Teams.Away.Name,
			HomeGoals: item.Goals.Home,
			AwayGoals: item.Goals.Away,
			Status:    entities.MatchStatus(item.Fixture.Status.Short),
			Kickoff:   kickoff,
			League:    item.League.Name,
		})
	}

	return &entities.Result{Intent: intent, Fixtures: data}, nil
}

// standingsPayload is the provider shape for league tables. The table is
// nested two levels deep and either level may be missing for cup stages.
type standingsPayload struct {
	Response []struct {
		League struct {
			Name      string `json:"name"`
			Standings [][]struct {
				Rank int `json:"rank"`
				Team struct {
					Name string `json:"name"`
				} `json:"team"`
				Points int `json:"points"`
				All    struct {
					Played int `json:"played"`
					Win    int `json:"win"`
					Draw   int `json:"draw"`
					Lose   int `json:"lose"`
				} `json:"all"`
			} `json:"standings"`
		} `json:"league"`
	} `json:"response"`
}

func (c *Client) fetchStandings(ctx context.Context, ents entities.ExtractedEntities) (*entities.Result, error) {
	params := url.Values{}
	if ents.LeagueID != 0 {
		params.Set("league", strconv.Itoa(ents.LeagueID))
	}
	if ents.Season != 0 {
		params.Set("season", strconv.Itoa(ents.Season))
	}

	var payload standingsPayload
	if err := c.get(ctx, "standings", params, &payload); err != nil {
		return nil, err
	}

	data := &entities.StandingsData{}
	if len(payload.Response) > 0 {
		league := payload.Response[0].League
		data.League = league.Name
		if len(league.Standings) > 0 {
			for _, row := range league.Standings[0] {
				data.Table = append(data.Table, entities.StandingRow{
					Rank:   row.Rank,
					Team:   row.Team.Name,
					Played: row.All.Played,
					Wins:   row.All.Win,
					Draws:  row.All.Draw,
					Losses: row.All.Lose,
					Points: row.Points,
				})
			}
		}
	}

	return &entities.Result{Intent: entities.IntentStandings, Standings: data}, nil
}

// playersPayload is the provider shape for both top scorers and player
// searches; statistics is a per-competition list of which the first entry
// is the relevant one.
type playersPayload struct {
	Response []struct {
		Player struct {
			Name string `json:"name"`
		} `json:"player"`
		Statistics []struct {
			Team struct {
				Name string `json:"name"`
			} `json:"team"`
			Games struct {
				Rating string `json:"rating"`
			} `json:"games"`
			Goals struct {
				Total   *int `json:"total"`
				Assists *int `json:"assists"`
			} `json:"goals"`
		} `json:"statistics"`
	} `json:"response"`
}

func (c *Client) fetchTopScorers(ctx context.Context, ents entities.ExtractedEntities) (*entities.Result, error) {
	params := url.Values{}
	if ents.LeagueID != 0 {
		params.Set("league", strconv.Itoa(ents.LeagueID))
	}
	if ents.Season != 0 {
		params.Set("season", strconv.Itoa(ents.Season))
	}

	var payload playersPayload
	if err := c.get(ctx, "players/topscorers", params, &payload); err != nil {
		return nil, err
	}

	data := &entities.TopScorersData{Scorers: make([]entities.ScorerEntry, 0, len(payload.Response))}
	for _, item := range payload.Response {
		entry := entities.ScorerEntry{Player: item.Player.Name}
		if len(item.Statistics) > 0 {
			entry.Team = item.Statistics[0].Team.Name
			if item.Statistics[0].Goals.Total != nil {
				entry.Goals = *item.Statistics[0].Goals.Total
			}
		}
		data.Scorers = append(data.Scorers, entry)
	}

	return &entities.Result{Intent: entities.IntentTopScorers, TopScorers: data}, nil
}

func (c *Client) fetchPlayerStats(ctx context.Context, ents entities.ExtractedEntities) (*entities.Result, error) {
	if ents.Player == "" {
		return nil, fmt.Errorf("player stats require a player name")
	}

	params := url.Values{}
	params.Set("search", ents.Player)
	if ents.LeagueID != 0 {
		params.Set("league", strconv.Itoa(ents.LeagueID))
	}
	if ents.Season != 0 {
		params.Set("season", strconv.Itoa(ents.Season))
	}

	var payload playersPayload
	if err := c.get(ctx, "players", params, &payload); err != nil {
		return nil, err
	}

	data := &entities.PlayerStatsData{Players: make([]entities.PlayerStatLine, 0, len(payload.Response))}
	for _, item := range payload.Response {
		line := entities.PlayerStatLine{Player: item.Player.Name}
		if len(item.Statistics) > 0 {
			stats := item.Statistics[0]
			line.Team = stats.Team.Name
			if stats.Goals.Total != nil {
				line.Goals = *stats.Goals.Total
			}
			if stats.Goals.Assists != nil {
				line.Assists = *stats.Goals.Assists
			}
			if stats.Games.Rating != "" {
				if rating, err := strconv.ParseFloat(stats.Games.Rating, 64); err == nil {
					line.Rating = rating
				}
			}
		}
		data.Players = append(data.Players, line)
	}

	return &entities.Result{Intent: entities.IntentPlayerStats, PlayerStats: data}, nil
}

// apiEnvelope carries the provider's error reporting; errors arrive in the
// body of a 200 response as a non-empty object.
type apiEnvelope struct {
	Errors json.RawMessage `json:"errors"`
}

// get performs one GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", "api-football-v1.p.rapidapi.com")

	c.log.Debug("api-football request", zap.String("endpoint", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling api-football: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading api-football response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("api-football error response",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("api-football %s: status %d: %s", endpoint, resp.StatusCode, string(body))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("parsing api-football response: %w", err)
	}
	if hasAPIErrors(envelope.Errors) {
		return fmt.Errorf("api-football %s: %s", endpoint, string(envelope.Errors))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing api-football %s payload: %w", endpoint, err)
	}
	return nil
}

// hasAPIErrors reports whether the errors field holds actual errors. The
// provider sends either an empty array or an object keyed by parameter.
func hasAPIErrors(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err == nil {
		return len(asMap) > 0
	}

	var asList []any
	if err := json.Unmarshal(raw, &asList); err == nil {
		return len(asList) > 0
	}

	return false
}
