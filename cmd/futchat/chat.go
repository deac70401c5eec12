package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long: `Starts a chat session where follow-up questions ("y ahora en vivo?")
inherit context from earlier queries. Type "nueva" to start a fresh
conversation, "salir" to quit.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		if err := d.Handler.StartConversation(ctx, "chat"); err != nil {
			return err
		}

		fmt.Println("futchat - pregunta sobre partidos, clasificaciones, goleadores y jugadores.")
		fmt.Println(`Escribe "nueva" para empezar de cero, "salir" para terminar.`)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}

			query := strings.TrimSpace(scanner.Text())
			switch strings.ToLower(query) {
			case "":
				continue
			case "salir", "exit", "quit":
				return nil
			case "nueva", "new":
				if err := d.Handler.StartConversation(ctx, "chat"); err != nil {
					return err
				}
				fmt.Println("Conversación nueva.")
				continue
			}

			result, err := d.Handler.Handle(ctx, query)
			if err != nil {
				// One failed fetch should not kill the session.
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}

			printChatResult(result)
		}

		return scanner.Err()
	})
}
