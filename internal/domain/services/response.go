package services

import (
	"fmt"
	"strings"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// ResponseService turns fetched data into a short natural-language summary:
// per-intent analyzers compute highlights, which are rendered under a
// context-aware opener. All output is Spanish, matching the product voice.
type ResponseService struct{}

// NewResponseService creates a new response service.
func NewResponseService() *ResponseService {
	return &ResponseService{}
}

// Analyze computes insights for the given result. Intents without an
// analyzer yield zero insights, and every analyzer tolerates absent or
// empty collections the same way.
func (s *ResponseService) Analyze(intent entities.IntentKind, result *entities.Result) entities.DataInsights {
	insights := entities.DataInsights{}
	if result == nil {
		return insights
	}

	switch intent {
	case entities.IntentFixtures, entities.IntentLive:
		return analyzeFixtures(result.Fixtures)
	case entities.IntentStandings:
		return analyzeStandings(result.Standings)
	case entities.IntentTopScorers:
		return analyzeTopScorers(result.TopScorers)
	case entities.IntentPlayerStats:
		return analyzePlayerStats(result.PlayerStats)
	}

	return insights
}

// Generate assembles the summary for one response: a follow-up aware opener
// followed by one bulleted line per highlight. No highlights means the
// response is just the opener.
func (s *ResponseService) Generate(intent entities.IntentKind, result *entities.Result, isFollowUp bool) string {
	insights := s.Analyze(intent, result)

	var b strings.Builder

	if isFollowUp {
		b.WriteString("Aquí tienes la información adicional:\n\n")
	} else {
		fmt.Fprintf(&b, "Encontré %d resultado(s) para tu consulta.\n\n", insights.TotalItems)
	}

	if len(insights.Highlights) > 0 {
		b.WriteString("**Destacados:**\n")
		for _, h := range insights.Highlights {
			fmt.Fprintf(&b, "• %s\n", h)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Suggestions proposes up to three related queries, skipping whichever
// action the current intent just performed.
func (s *ResponseService) Suggestions(intent entities.IntentKind, ents entities.ExtractedEntities) []string {
	var suggestions []string

	if ents.Team != "" {
		if intent != entities.IntentStandings {
			league := ents.League
			if league == "" {
				league = "la liga"
			}
			suggestions = append(suggestions, fmt.Sprintf("Ver clasificación de %s", league))
		}
		if intent != entities.IntentTopScorers {
			suggestions = append(suggestions, fmt.Sprintf("Ver goleadores de %s", ents.Team))
		}
		if intent != entities.IntentFixtures {
			suggestions = append(suggestions, fmt.Sprintf("Ver próximos partidos de %s", ents.Team))
		}
	}

	if ents.League != "" && ents.Team == "" {
		suggestions = append(suggestions, fmt.Sprintf("Ver equipos destacados de %s", ents.League))
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

// analyzeFixtures counts finished matches by outcome and flags streaks and
// live matches. Several highlights can co-occur.
func analyzeFixtures(data *entities.FixturesData) entities.DataInsights {
	insights := entities.DataInsights{}
	if data == nil || len(data.Fixtures) == 0 {
		return insights
	}

	insights.TotalItems = len(data.Fixtures)

	var wins, losses, live int
	for _, f := range data.Fixtures {
		if f.Status == entities.StatusFullTime && f.HomeGoals != nil && f.AwayGoals != nil {
			switch {
			case *f.HomeGoals > *f.AwayGoals:
				wins++
			case *f.HomeGoals < *f.AwayGoals:
				losses++
			}
		}
		if f.Status.IsLive() {
			live++
		}
	}

	if wins >= 3 {
		insights.Highlights = append(insights.Highlights, fmt.Sprintf("🔥 Buena racha: %d victorias", wins))
	}
	if losses >= 3 {
		insights.Highlights = append(insights.Highlights, fmt.Sprintf("⚠️ Momento difícil: %d derrotas", losses))
	}
	if live > 0 {
		insights.Highlights = append(insights.Highlights, fmt.Sprintf("🔴 %d partido(s) en vivo", live))
	}

	return insights
}

// analyzeStandings reports the leader and the relegation zone. Tables
// shorter than three rows still report their last rows as the relegation
// zone, which may overlap the leaders; behavior for sub-3-team tables is
// unspecified upstream and kept as-is.
func analyzeStandings(data *entities.StandingsData) entities.DataInsights {
	insights := entities.DataInsights{}
	if data == nil || len(data.Table) == 0 {
		return insights
	}

	table := data.Table
	insights.TotalItems = len(table)

	leader := table[0]
	insights.Highlights = append(insights.Highlights,
		fmt.Sprintf("🥇 Líder: %s con %d puntos", leader.Team, leader.Points))

	start := len(table) - 3
	if start < 0 {
		start = 0
	}
	names := make([]string, 0, 3)
	for _, row := range table[start:] {
		names = append(names, row.Team)
	}
	insights.Highlights = append(insights.Highlights,
		fmt.Sprintf("⚠️ Zona de descenso: %s", strings.Join(names, ", ")))

	return insights
}

// analyzeTopScorers reports the leading scorer and flags a tie at the top.
func analyzeTopScorers(data *entities.TopScorersData) entities.DataInsights {
	insights := entities.DataInsights{}
	if data == nil || len(data.Scorers) == 0 {
		return insights
	}

	scorers := data.Scorers
	insights.TotalItems = len(scorers)

	top := scorers[0]
	insights.Highlights = append(insights.Highlights,
		fmt.Sprintf("⚽ Máximo goleador: %s con %d goles", top.Player, top.Goals))

	if len(scorers) >= 2 && scorers[0].Goals == scorers[1].Goals {
		insights.Highlights = append(insights.Highlights,
			fmt.Sprintf("🤝 Empate en la cima con %d goles", top.Goals))
	}

	return insights
}

// analyzePlayerStats flags notable numbers per player. The three checks are
// independent and can all fire for the same player.
func analyzePlayerStats(data *entities.PlayerStatsData) entities.DataInsights {
	insights := entities.DataInsights{}
	if data == nil || len(data.Players) == 0 {
		return insights
	}

	insights.TotalItems = len(data.Players)

	for _, p := range data.Players {
		if p.Goals > 10 {
			insights.Highlights = append(insights.Highlights,
				fmt.Sprintf("⚽ Excelente goleador: %d goles", p.Goals))
		}
		if p.Assists > 5 {
			insights.Highlights = append(insights.Highlights,
				fmt.Sprintf("🎯 Gran asistidor: %d asistencias", p.Assists))
		}
		if p.Rating > 7.5 {
			insights.Highlights = append(insights.Highlights,
				fmt.Sprintf("⭐ Rating destacado: %v", p.Rating))
		}
	}

	return insights
}
