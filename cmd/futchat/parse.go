package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/domain/services"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <consulta>...",
		Short: "Show the parse result without fetching data",
		Long: `Runs the query-understanding pipeline only and prints the result as
JSON. Multiple queries share one conversation context, so follow-up
resolution can be inspected: futchat parse "partidos de barcelona" "y ahora la clasificacion".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(args)
		},
	}
}

func runParse(queries []string) error {
	parser := services.NewParserService(services.NewExtractionService(), services.NewIntentService())
	conv := services.NewConversationContext()

	for _, query := range queries {
		parsed := parser.Parse(conv, query)

		out, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling parse result: %w", err)
		}
		fmt.Println(string(out))
	}

	return nil
}
