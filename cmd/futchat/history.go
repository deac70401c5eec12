package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent messages from the latest conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of messages")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		conversationID, err := d.Store.LatestConversation(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			fmt.Println("No conversations yet.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("finding latest conversation: %w", err)
		}

		messages, err := d.Store.RecentMessages(ctx, conversationID, limit)
		if err != nil {
			return fmt.Errorf("loading messages: %w", err)
		}

		if len(messages) == 0 {
			fmt.Println("No messages yet.")
			return nil
		}

		// Stored most recent first; print oldest first for reading.
		for i := len(messages) - 1; i >= 0; i-- {
			msg := messages[i]
			fmt.Printf("[%s] %s\n", msg.Role, msg.Content)
		}

		return nil
	})
}
