// Package main provides the entry point for the futchat CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version        = "0.1.0-dev"
	globalProvider string
	globalVerbose  bool
)

func main() {
	// Optional .env for API keys; absence is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "futchat",
		Short:   "A conversational front-end for football data",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalProvider, "provider", "p", "footballapi", "Data provider (footballapi, sofascore)")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(
		newAskCmd(),
		newChatCmd(),
		newParseCmd(),
		newHistoryCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
