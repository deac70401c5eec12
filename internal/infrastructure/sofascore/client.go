// Package sofascore provides an alternative data source backed by the
// public sofascore API. It supports standings, finished fixtures, and
// entity search; other intents fail with a descriptive error.
//
// The API is unauthenticated but unfriendly to bursts, so the client spaces
// requests with randomized delays, rotates user agents, and backs off on
// 429/403 responses.
package sofascore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/ports"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/config"
)

// userAgents is rotated across requests.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
}

const (
	minRequestDelay = 500 * time.Millisecond
	maxRequestDelay = 1500 * time.Millisecond
	maxRetries      = 3

	// statusCodeFinished is sofascore's event status code for full time.
	statusCodeFinished = 100
)

// Client calls the sofascore API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger

	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient creates a new sofascore client.
func NewClient(cfg config.SofascoreConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.sofascore.com/api/v1"
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Fetch retrieves data for the given intent. LeagueID is interpreted as a
// sofascore tournament ID. Only standings and fixtures are supported here.
func (c *Client) Fetch(ctx context.Context, intent entities.IntentKind, ents entities.ExtractedEntities) (*entities.Result, error) {
	switch intent {
	case entities.IntentStandings:
		return c.fetchStandings(ctx, ents)
	case entities.IntentFixtures:
		return c.fetchEvents(ctx, ents)
	default:
		return nil, fmt.Errorf("intent %q is not supported by sofascore", intent)
	}
}

// ResolveTeam searches for a team and returns its sofascore ID.
func (c *Client) ResolveTeam(ctx context.Context, name string) (int, error) {
	return c.search(ctx, name, "team")
}

// ResolveLeague searches for a tournament and returns its sofascore ID.
func (c *Client) ResolveLeague(ctx context.Context, name string) (int, error) {
	return c.search(ctx, name, "uniqueTournament")
}

func (c *Client) search(ctx context.Context, query, wantType string) (int, error) {
	var payload struct {
		Results []struct {
			Type   string `json:"type"`
			Entity struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"entity"`
		} `json:"results"`
	}

	endpoint := "/search/all?q=" + strings.ReplaceAll(query, " ", "%20")
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return 0, err
	}

	for _, result := range payload.Results {
		if result.Type == wantType {
			return result.Entity.ID, nil
		}
	}
	return 0, ports.ErrNotFound
}

// currentSeason returns the most recent season ID for a tournament.
func (c *Client) currentSeason(ctx context.Context, tournamentID int) (int, error) {
	var payload struct {
		Seasons []struct {
			ID int `json:"id"`
		} `json:"seasons"`
	}

	endpoint := fmt.Sprintf("/tournament/%d/seasons", tournamentID)
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return 0, err
	}

	if len(payload.Seasons) == 0 {
		return 0, fmt.Errorf("no seasons found for tournament %d", tournamentID)
	}
	return payload.Seasons[0].ID, nil
}

func (c *Client) fetchStandings(ctx context.Context, ents entities.ExtractedEntities) (*entities.Result, error) {
	if ents.LeagueID == 0 {
		return nil, fmt.Errorf("standings require a resolved league")
	}

	seasonID, err := c.currentSeason(ctx, ents.LeagueID)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Standings []struct {
			Rows []struct {
				Team struct {
					Name string `json:"name"`
				} `json:"team"`
				Position int `json:"position"`
				Matches  int `json:"matches"`
				Wins     int `json:"wins"`
				Draws    int `json:"draws"`
				Losses   int `json:"losses"`
				Points   int `json:"points"`
			} `json:"rows"`
		} `json:"standings"`
	}

	endpoint := fmt.Sprintf("/tournament/%d/season/%d/standings/total", ents.LeagueID, seasonID)
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	data := &entities.StandingsData{League: ents.League}
	if len(payload.Standings) > 0 {
		for _, row := range payload.Standings[0].Rows {
			data.Table = append(data.Table, entities.StandingRow{
				Rank:   row.Position,
				Team:   row.Team.Name,
				Played: row.Matches,
				Wins:   row.Wins,
				Draws:  row.Draws,
				Losses: row.Losses,
				Points: row.Points,
			})
		}
	}

	return &entities.Result{Intent: entities.IntentStandings, Standings: data}, nil
}

func (c *Client) fetchEvents(ctx context.Context, ents entities.ExtractedEntities) (*entities.Result, error) {
	if ents.LeagueID == 0 {
		return nil, fmt.Errorf("fixtures require a resolved league")
	}

	seasonID, err := c.currentSeason(ctx, ents.LeagueID)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Events []struct {
			Tournament struct {
				Name string `json:"name"`
			} `json:"tournament"`
			HomeTeam struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"homeTeam"`
			AwayTeam struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
			} `json:"awayTeam"`
			HomeScore struct {
				Current *int `json:"current"`
			} `json:"homeScore"`
			AwayScore struct {
				Current *int `json:"current"`
			} `json:"awayScore"`
			Status struct {
				Code int `json:"code"`
			} `json:"status"`
			StartTimestamp int64 `json:"startTimestamp"`
		} `json:"events"`
	}

	endpoint := fmt.Sprintf("/tournament/%d/season/%d/events", ents.LeagueID, seasonID)
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	data := &entities.FixturesData{}
	for _, event := range payload.Events {
		// Only finished matches carry usable scores here.
		if event.Status.Code != statusCodeFinished {
			continue
		}
		if ents.TeamID != 0 && event.HomeTeam.ID != ents.TeamID && event.AwayTeam.ID != ents.TeamID {
			continue
		}
		data.Fixtures = append(data.Fixtures, entities.Fixture{
			HomeTeam:  event.HomeTeam.Name,
			AwayTeam:  event.AwayTeam.Name,
			HomeGoals: event.HomeScore.Current,
			AwayGoals: event.AwayScore.Current,
			Status:    entities.StatusFullTime,
			Kickoff:   time.Unix(event.StartTimestamp, 0).UTC(),
			League:    event.Tournament.Name,
		})
	}

	return &entities.Result{Intent: entities.IntentFixtures, Fixtures: data}, nil
}

// get performs one rate-limited GET request, retrying with increasing
// backoff when sofascore pushes back with 429 or 403.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	for attempt := 0; ; attempt++ {
		if err := c.waitTurn(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
		if err != nil {
			return fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
		req.Header.Set("Referer", "https://www.sofascore.com/")
		req.Header.Set("Cache-Control", "no-cache")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("calling sofascore: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("reading sofascore response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden {
			if attempt < maxRetries {
				backoff := time.Duration(attempt+1) * 2 * time.Second
				c.log.Warn("sofascore pushed back, retrying",
					zap.Int("status", resp.StatusCode),
					zap.Duration("backoff", backoff),
					zap.Int("attempt", attempt+1))
				select {
				case <-time.After(backoff):
					continue
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("sofascore %s: status %d", endpoint, resp.StatusCode)
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("parsing sofascore response: %w", err)
		}
		return nil
	}
}

// waitTurn enforces a randomized delay between consecutive requests.
func (c *Client) waitTurn(ctx context.Context) error {
	c.mu.Lock()
	delay := minRequestDelay + time.Duration(rand.Int63n(int64(maxRequestDelay-minRequestDelay)))
	wait := delay - time.Since(c.lastRequest)
	c.lastRequest = time.Now().Add(wait)
	c.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
