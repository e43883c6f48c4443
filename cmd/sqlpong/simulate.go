package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeutschler/sqlpong/internal/sim"
)

var flagTicks uint64

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a match headless and print the result",
	Long: `Run the simulation without a display and print the final state.

Useful for benchmarking the SQL engine and for reproducing a match
from its seed.

Examples:
  sqlpong simulate
  sqlpong simulate --ticks 100000
  sqlpong simulate --ticks 50000 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 10000, "Number of ticks to simulate")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	match, err := sim.NewMatch(cfg.FieldConfig(), cfg.AIConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		logger.Fatal("could not start match", "err", err)
	}
	defer match.Close()

	start := time.Now()
	var snap sim.Snapshot
	for i := uint64(0); i < flagTicks; i++ {
		snap, err = match.Step()
		if err != nil {
			logger.Fatal("simulation failed", "tick", i, "err", err)
		}
	}
	elapsed := time.Since(start)

	rate := float64(flagTicks) / elapsed.Seconds()
	fmt.Printf("seed     %d\n", seed)
	fmt.Printf("ticks    %d in %s (%.0f ticks/s)\n", snap.Tick, elapsed.Round(time.Millisecond), rate)
	fmt.Printf("score    A %d : %d B\n", snap.ScoreA, snap.ScoreB)
	fmt.Printf("leader   %s\n", snap.Leader())
}
