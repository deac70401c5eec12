// Package handlers wires the query-understanding pipeline to the external
// collaborators: the data source, the ID resolver, persistence, and the
// optional summary polish.
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/ports"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/services"
)

// ChatResult is the outcome of handling one user query.
type ChatResult struct {
	Parsed      entities.ParsedQuery
	Result      *entities.Result
	Response    string
	Suggestions []string
}

// ChatHandler runs the full turn for a conversation: parse, resolve IDs,
// fetch, summarize, persist. One handler owns one conversation context, so
// concurrent sessions each need their own handler.
type ChatHandler struct {
	parser    *services.ParserService
	responder *services.ResponseService
	source    ports.DataSource

	// Optional collaborators; any of these may be nil.
	resolver   ports.EntityResolver
	store      ports.ConversationStore
	summarizer ports.Summarizer

	conv           *services.ConversationContext
	conversationID string
}

// NewChatHandler creates a chat handler with a fresh conversation context.
// resolver, store, and summarizer may be nil.
func NewChatHandler(
	parser *services.ParserService,
	responder *services.ResponseService,
	source ports.DataSource,
	resolver ports.EntityResolver,
	store ports.ConversationStore,
	summarizer ports.Summarizer,
) *ChatHandler {
	return &ChatHandler{
		parser:     parser,
		responder:  responder,
		source:     source,
		resolver:   resolver,
		store:      store,
		summarizer: summarizer,
		conv:       services.NewConversationContext(),
	}
}

// StartConversation clears the conversation context and, when a store is
// configured, registers a new conversation for persistence.
func (h *ChatHandler) StartConversation(ctx context.Context, title string) error {
	h.conv.Clear()
	h.conversationID = ""

	if h.store == nil {
		return nil
	}

	id, err := h.store.CreateConversation(ctx, title)
	if err != nil {
		return fmt.Errorf("creating conversation: %w", err)
	}
	h.conversationID = id
	return nil
}

// Context returns the conversation context owned by this handler.
func (h *ChatHandler) Context() *services.ConversationContext {
	return h.conv
}

// ConversationID returns the persisted conversation ID, if any.
func (h *ChatHandler) ConversationID() string {
	return h.conversationID
}

// Handle processes one user query end to end. Data-source failures are
// propagated unchanged; resolver misses are non-fatal and leave the numeric
// IDs unset; a failing summarizer falls back to the deterministic summary.
func (h *ChatHandler) Handle(ctx context.Context, query string) (*ChatResult, error) {
	parsed := h.parser.Parse(h.conv, query)

	h.resolveIDs(ctx, &parsed.Entities)

	result, err := h.source.Fetch(ctx, parsed.Intent.Primary, parsed.Entities)
	if err != nil {
		return nil, err
	}

	response := h.responder.Generate(parsed.Intent.Primary, result, parsed.IsFollowUp)
	suggestions := h.responder.Suggestions(parsed.Intent.Primary, parsed.Entities)

	if h.summarizer != nil {
		polished, err := h.summarizer.Polish(ctx, query, response, result)
		if err == nil && polished != "" {
			response = polished
		}
	}

	if err := h.persist(ctx, parsed, response); err != nil {
		return nil, err
	}

	return &ChatResult{
		Parsed:      parsed,
		Result:      result,
		Response:    response,
		Suggestions: suggestions,
	}, nil
}

// resolveIDs fills TeamID and LeagueID via the resolver. A miss simply
// leaves the field unset and the fetch proceeds without that filter.
func (h *ChatHandler) resolveIDs(ctx context.Context, ents *entities.ExtractedEntities) {
	if h.resolver == nil {
		return
	}

	if ents.Team != "" && ents.TeamID == 0 {
		if id, err := h.resolver.ResolveTeam(ctx, ents.Team); err == nil {
			ents.TeamID = id
		}
	}
	if ents.League != "" && ents.LeagueID == 0 {
		if id, err := h.resolver.ResolveLeague(ctx, ents.League); err == nil {
			ents.LeagueID = id
		}
	}
}

// persist records the user message, the parse trace, and the assistant
// reply when a store is configured.
func (h *ChatHandler) persist(ctx context.Context, parsed entities.ParsedQuery, response string) error {
	if h.store == nil || h.conversationID == "" {
		return nil
	}

	now := time.Now()

	userMsg := entities.Message{
		ID:             uuid.New().String(),
		ConversationID: h.conversationID,
		Role:           entities.RoleUser,
		Content:        parsed.Original,
		CreatedAt:      now,
	}
	if err := h.store.SaveMessage(ctx, userMsg); err != nil {
		return fmt.Errorf("saving user message: %w", err)
	}

	record := entities.QueryRecord{
		ID:             uuid.New().String(),
		ConversationID: h.conversationID,
		Query:          parsed.Original,
		Intent:         parsed.Intent.Primary,
		Confidence:     parsed.Intent.Confidence,
		Entities:       parsed.Entities,
		IsFollowUp:     parsed.IsFollowUp,
		CreatedAt:      now,
	}
	if err := h.store.SaveQuery(ctx, record); err != nil {
		return fmt.Errorf("saving query record: %w", err)
	}

	assistantMsg := entities.Message{
		ID:             uuid.New().String(),
		ConversationID: h.conversationID,
		Role:           entities.RoleAssistant,
		Content:        response,
		CreatedAt:      now,
	}
	if err := h.store.SaveMessage(ctx, assistantMsg); err != nil {
		return fmt.Errorf("saving assistant message: %w", err)
	}

	return nil
}
