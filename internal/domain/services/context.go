package services

import (
	"strings"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// maxHistorySize bounds the query history kept per conversation.
const maxHistorySize = 10

// pronouns are the Spanish pronouns and demonstratives that trigger
// reference resolution. Matched as substrings of the lowered query.
var pronouns = []string{"él", "ella", "ellos", "ese", "esa", "esos", "mismo", "misma"}

// resolvePhrases are the follow-up openers consulted during reference
// resolution. A second, deliberately different list lives in
// followUpIndicators; the two have different sensitivity and are kept
// separate on purpose.
var resolvePhrases = []string{"y ahora", "ahora", "y los", "y las", "qué tal", "que tal"}

// followUpIndicators are the openers that mark a query as a follow-up for
// the parse output flag and the response opener.
var followUpIndicators = []string{
	"y ahora",
	"ahora muestra",
	"y los",
	"y las",
	"también",
	"tambien",
	"qué tal",
	"que tal",
	"y el",
	"y la",
}

// ConversationContext tracks what a single conversation has mentioned so
// far: the last team, league, player, and intent, plus a bounded query
// history. One instance belongs to exactly one conversation; sharing an
// instance across concurrent sessions cross-talks their follow-up
// resolution, so the caller must create one per session.
//
// The zero value is ready to use.
type ConversationContext struct {
	lastTeam   string
	lastLeague string
	lastPlayer string
	lastIntent entities.IntentKind

	queryHistory  []string
	entityHistory map[string]string
}

// NewConversationContext creates an empty conversation context.
func NewConversationContext() *ConversationContext {
	return &ConversationContext{
		entityHistory: make(map[string]string),
	}
}

// Update folds a parsed query into the context: the query joins the front
// of the history and any entity present overwrites the last-seen value.
func (c *ConversationContext) Update(query string, ents entities.ExtractedEntities, intent entities.IntentKind) {
	c.queryHistory = append([]string{query}, c.queryHistory...)
	if len(c.queryHistory) > maxHistorySize {
		c.queryHistory = c.queryHistory[:maxHistorySize]
	}

	if c.entityHistory == nil {
		c.entityHistory = make(map[string]string)
	}

	if ents.Team != "" {
		c.lastTeam = ents.Team
		c.entityHistory["team"] = ents.Team
	}
	if ents.League != "" {
		c.lastLeague = ents.League
		c.entityHistory["league"] = ents.League
	}
	if ents.Player != "" {
		c.lastPlayer = ents.Player
		c.entityHistory["player"] = ents.Player
	}

	c.lastIntent = intent
}

// ResolveReferences back-fills missing entities from context when the query
// leans on earlier conversation, via pronouns ("mismo", "también") or
// follow-up openers ("y ahora"). Entities explicitly present in the query
// are never overwritten, and an empty context simply leaves gaps unfilled.
func (c *ConversationContext) ResolveReferences(query string, ents entities.ExtractedEntities) entities.ExtractedEntities {
	lower := strings.ToLower(query)
	resolved := ents

	hasPronoun := false
	for _, p := range pronouns {
		if strings.Contains(lower, p) {
			hasPronoun = true
			break
		}
	}

	if hasPronoun || strings.Contains(lower, "también") || strings.Contains(lower, "tambien") {
		if resolved.Team == "" && c.lastTeam != "" {
			resolved.Team = c.lastTeam
		}
		if resolved.League == "" && c.lastLeague != "" {
			resolved.League = c.lastLeague
		}
		if resolved.Player == "" && c.lastPlayer != "" {
			resolved.Player = c.lastPlayer
		}
	}

	followUp := false
	for _, phrase := range resolvePhrases {
		if strings.HasPrefix(lower, phrase) {
			followUp = true
			break
		}
	}

	if followUp {
		if resolved.Team == "" && c.lastTeam != "" {
			resolved.Team = c.lastTeam
		}
		if resolved.League == "" && c.lastLeague != "" {
			resolved.League = c.lastLeague
		}
	}

	return resolved
}

// IsFollowUp reports whether the query starts with a follow-up opener.
func (c *ConversationContext) IsFollowUp(query string) bool {
	lower := strings.ToLower(query)
	for _, indicator := range followUpIndicators {
		if strings.HasPrefix(lower, indicator) {
			return true
		}
	}
	return false
}

// LastEntity returns the last-seen value for an entity kind ("team",
// "league", "player").
func (c *ConversationContext) LastEntity(kind string) (string, bool) {
	value, ok := c.entityHistory[kind]
	return value, ok
}

// LastIntent returns the intent of the most recent parsed query.
func (c *ConversationContext) LastIntent() entities.IntentKind {
	return c.lastIntent
}

// History returns a copy of the query history, most recent first.
func (c *ConversationContext) History() []string {
	history := make([]string, len(c.queryHistory))
	copy(history, c.queryHistory)
	return history
}

// Clear resets the context for a new conversation.
func (c *ConversationContext) Clear() {
	c.lastTeam = ""
	c.lastLeague = ""
	c.lastPlayer = ""
	c.lastIntent = ""
	c.queryHistory = nil
	c.entityHistory = make(map[string]string)
}
