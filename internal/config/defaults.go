package config

import (
	_ "embed"

	"github.com/zeutschler/sqlpong/internal/sim"
)

//go:embed defaults/sqlpong.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic 80x25 field with
// the stock AI tuning and a 30 fps start.
func Default() Config {
	ai := sim.DefaultAI()
	buckets := make([]AimBucket, len(ai.Buckets))
	for i, b := range ai.Buckets {
		buckets[i] = AimBucket{Cumulative: b.Cumulative, Offset: b.Offset}
	}
	return Config{
		Field: FieldSettings{
			Width:        sim.DefaultWidth,
			Height:       sim.DefaultHeight,
			PaddleHeight: sim.DefaultPaddleH,
			PaddleSpeed:  sim.DefaultPaddleSpeed,
		},
		AI: AISettings{
			DefendProb:  ai.DefendProb,
			TriggerZone: ai.TriggerZone,
			Buckets:     buckets,
		},
		Pacing: PacingSettings{
			FPS:    30,
			MinFPS: 15,
			MaxFPS: 120,
		},
	}
}
