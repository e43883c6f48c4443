// sqlpong is a self-playing Pong match computed entirely in SQL: the game
// state lives in an in-memory SQLite database and every tick and every frame
// is one query.
//
// Usage:
//
//	sqlpong                  - Watch a match (same as 'sqlpong play')
//	sqlpong play             - Watch a match
//	sqlpong simulate         - Run a headless match and print the result
//	sqlpong history          - Browse past match results
//
// Global flags:
//
//	--fps <rate>    - Starting frame rate (default from config)
//	--seed <value>  - RNG seed for reproducible matches (0 = time-based)
//	--db <path>     - Match history database (default: ~/.sqlpong/matches.db)
//	--config <path> - Custom config YAML
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "sqlpong",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sqlpong",
	Short: "SQLite playing Pong against itself, in SQL",
	Long: `sqlpong runs a Pong match where both players are SQL expressions.

The match state is a single row in an in-memory SQLite database. One
query advances the simulation by a tick, another renders the field.
The terminal shell only pumps the loop and paints the rows.

Available commands:
  play      - Watch a match in the terminal (default)
  simulate  - Run a match headless and print the final score
  history   - Browse results of past matches

Examples:
  sqlpong
  sqlpong play --fps 60
  sqlpong play --seed 42
  sqlpong simulate --ticks 100000
  sqlpong history --limit 50`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Starting frame rate (0 = config default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sqlpong/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(historyCmd)
}
