package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-matcher/internal/history"
)

var (
	historyPath  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded scoring runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent scoring runs, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := historyPath
		if path == "" {
			path = appConfig.HistoryPath
		}
		return runHistoryList(commandContext(cmd), cmd.OutOrStdout(), path, historyLimit)
	},
}

func init() {
	historyListCmd.Flags().StringVar(&historyPath, "history", "", "History database (default from config)")
	historyListCmd.Flags().IntVar(&historyLimit, "limit", history.DefaultListLimit, "Maximum number of entries")
	historyCmd.AddCommand(historyListCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(ctx context.Context, stdout io.Writer, path string, limit int) error {
	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	entries, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	return writeOutput(stdout, "", entries)
}
