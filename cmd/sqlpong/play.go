package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zeutschler/sqlpong/internal/config"
	"github.com/zeutschler/sqlpong/internal/platform/tui"
	"github.com/zeutschler/sqlpong/internal/sim"
	"github.com/zeutschler/sqlpong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Watch a match in the terminal",
	Long: `Start a match and watch it in the terminal.

Controls:
  Esc/Q/Ctrl+C - Quit
  S            - Toggle sound (bounce beeps)
  +            - Double the frame rate, then uncapped MAX mode
  -            - Halve the frame rate (leaves MAX mode first)

Examples:
  sqlpong play
  sqlpong play --fps 60
  sqlpong play --seed 42
  sqlpong play --config ./my-sqlpong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	field := cfg.FieldConfig()

	// The field plus the two status rows must fit, otherwise the frame
	// wraps and the board is unreadable. Warn, don't refuse: the user may
	// be about to resize.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < field.Width || h < field.Height+2 {
			logger.Warn("terminal smaller than the field, display may wrap",
				"have", fmt.Sprintf("%dx%d", w, h),
				"need", fmt.Sprintf("%dx%d", field.Width, field.Height+2))
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	match, err := sim.NewMatch(field, cfg.AIConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		logger.Fatal("could not start match", "err", err)
	}
	defer match.Close()

	// History is a nicety. A broken database should not stop the match.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match history database", "err", err)
		store = nil
	}

	result, err := tui.Run(match, cfg)
	if err != nil {
		if store != nil {
			store.Close()
		}
		logger.Fatal("match aborted", "err", err)
	}

	if store != nil {
		rec := storage.MatchRecord{
			ScoreA:       result.Snapshot.ScoreA,
			ScoreB:       result.Snapshot.ScoreB,
			Ticks:        result.Snapshot.Tick,
			Seed:         seed,
			DurationSecs: int(result.Duration.Seconds()),
		}
		if _, err := store.SaveMatch(rec); err != nil {
			logger.Warn("could not save match result", "err", err)
		}
		store.Close()
	}
}

// loadConfig loads and validates the effective config, applying the --fps
// override. Invalid config is fatal: a match on bad parameters is nonsense.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "err", err)
	}
	if flagFPS > 0 {
		cfg.Pacing.FPS = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "err", err)
	}
	return cfg
}
