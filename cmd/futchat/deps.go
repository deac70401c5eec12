package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/application/handlers"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/ports"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/services"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/config"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/footballapi"
	llm "github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/llm/openai"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/sofascore"
	"github.com/traeia123456-rgb/API-FOOTBALL/internal/infrastructure/store/sqlite"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config  *config.Config
	Handler *handlers.ChatHandler
	Store   *sqlite.Store
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := zap.NewNop()
	if globalVerbose {
		log, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer log.Sync() //nolint:errcheck // stderr sync failure is harmless
	}

	source, resolver, err := buildProvider(cfg, log)
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(cfg.SQLite)
	if err != nil {
		return fmt.Errorf("creating sqlite store: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	// Summary polish is strictly optional; without a key the deterministic
	// summary is used as-is.
	var summarizer ports.Summarizer
	if cfg.LLM.APIKey != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			return fmt.Errorf("creating summarizer: %w", err)
		}
		summarizer = s
	}

	parser := services.NewParserService(services.NewExtractionService(), services.NewIntentService())
	responder := services.NewResponseService()

	handler := handlers.NewChatHandler(parser, responder, source, resolver, store, summarizer)

	return fn(&Deps{
		Config:  cfg,
		Handler: handler,
		Store:   store,
	})
}

// buildProvider creates the data source and resolver for the selected
// provider.
func buildProvider(cfg *config.Config, log *zap.Logger) (ports.DataSource, ports.EntityResolver, error) {
	switch globalProvider {
	case "footballapi":
		client, err := footballapi.NewClient(cfg.FootballAPI, log)
		if err != nil {
			return nil, nil, fmt.Errorf("creating api-football client: %w", err)
		}
		return client, client, nil
	case "sofascore":
		client := sofascore.NewClient(cfg.Sofascore, log)
		return client, client, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q (valid: footballapi, sofascore)", globalProvider)
	}
}
