package main

import (
	"github.com/spf13/cobra"

	"github.com/zeutschler/sqlpong/internal/platform/tui"
	"github.com/zeutschler/sqlpong/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse results of past matches",
	Long: `Show a table of recent match results with overall totals.

Examples:
  sqlpong history
  sqlpong history --limit 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open match history database", "err", err)
	}
	defer store.Close()

	if err := tui.RunHistory(store, flagLimit); err != nil {
		logger.Fatal("history view failed", "err", err)
	}
}
