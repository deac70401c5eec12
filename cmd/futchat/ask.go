package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traeia123456-rgb/API-FOOTBALL/internal/application/handlers"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <consulta>",
		Short: "Ask a single question",
		Long:  `Parses one free-text query, fetches the data, and prints a summary, e.g. futchat ask "partidos del real madrid".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args[0])
		},
	}
}

func runAsk(cmd *cobra.Command, query string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if err := d.Handler.StartConversation(ctx, query); err != nil {
			return err
		}

		result, err := d.Handler.Handle(ctx, query)
		if err != nil {
			return fmt.Errorf("handling query: %w", err)
		}

		printChatResult(result)
		return nil
	})
}

// printChatResult renders one turn's answer.
func printChatResult(result *handlers.ChatResult) {
	fmt.Print(result.Response)

	if len(result.Suggestions) > 0 {
		fmt.Println("También puedes probar:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}

	if globalVerbose {
		fmt.Printf("\n[intent=%s confidence=%.2f follow_up=%t]\n",
			result.Parsed.Intent.Primary, result.Parsed.Intent.Confidence, result.Parsed.IsFollowUp)
	}
}
