package services

import (
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
)

// ParserService orchestrates entity extraction, context resolution, and
// intent detection into one parse per query. The conversation context is
// caller-owned and passed in explicitly so each session keeps its own.
type ParserService struct {
	extractor *ExtractionService
	detector  *IntentService
}

// NewParserService creates a new parser service.
func NewParserService(extractor *ExtractionService, detector *IntentService) *ParserService {
	return &ParserService{
		extractor: extractor,
		detector:  detector,
	}
}

// Parse runs the full pipeline for one query and updates the conversation
// context as a side effect. It has no failure path of its own: an
// unparseable query still yields a defaulted entity set and a low-confidence
// fixtures intent.
func (s *ParserService) Parse(conv *ConversationContext, query string) entities.ParsedQuery {
	ents := s.extractor.Extract(query)

	// Captured before the context mutates; used only for the output flag
	// and the response opener.
	isFollowUp := conv.IsFollowUp(query)

	ents = conv.ResolveReferences(query, ents)

	intent := s.detector.Detect(query, ents)

	conv.Update(query, ents, intent.Primary)

	return entities.ParsedQuery{
		Original:   query,
		Intent:     intent,
		Entities:   ents,
		IsFollowUp: isFollowUp,
	}
}
