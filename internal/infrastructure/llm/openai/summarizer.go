// Package openai provides a Summarizer implementation using OpenAI.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/entities"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/config"
)

const polishPrompt = `Eres un asistente de datos de fútbol. Recibes la pregunta de un usuario, un resumen generado automáticamente y los datos en JSON.

Reescribe el resumen en un tono cercano y conciso, en español.

Reglas:
- No inventes datos que no estén en el JSON.
- Conserva todas las cifras y nombres tal cual aparecen.
- Máximo 4 frases más la lista de destacados si existe.
- Responde solo con el texto final, sin comentarios.`

// Summarizer implements the Summarizer interface using OpenAI chat
// completions.
type Summarizer struct {
	client *openai.Client
	model  string
}

// NewSummarizer creates a new OpenAI summarizer.
func NewSummarizer(cfg config.LLMConfig) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	client := openai.NewClient(cfg.APIKey)

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Summarizer{
		client: client,
		model:  model,
	}, nil
}

// Polish rewrites the deterministic summary in a friendlier tone. The data
// is included so the model can rephrase without inventing numbers.
func (s *Summarizer) Polish(ctx context.Context, query, draft string, result *entities.Result) (string, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshaling result: %w", err)
	}

	user := fmt.Sprintf("Pregunta: %s\n\nResumen:\n%s\n\nDatos:\n%s", query, draft, string(resultJSON))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: polishPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
