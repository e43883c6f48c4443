// Package config provides YAML-based match configuration for sqlpong.
package config

import (
	"fmt"

	"github.com/zeutschler/sqlpong/internal/sim"
)

// Config is the full match configuration.
type Config struct {
	Field  FieldSettings  `yaml:"field"`
	AI     AISettings     `yaml:"ai"`
	Pacing PacingSettings `yaml:"pacing"`
}

// FieldSettings mirrors sim.FieldConfig in YAML form.
type FieldSettings struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	PaddleHeight int `yaml:"paddle_height"`
	PaddleSpeed  int `yaml:"paddle_speed"`
}

// AISettings tunes both computer players.
type AISettings struct {
	DefendProb  float64     `yaml:"defend_prob"`
	TriggerZone int         `yaml:"trigger_zone"`
	Buckets     []AimBucket `yaml:"buckets"`
}

// AimBucket is one weighted trick-shot choice.
type AimBucket struct {
	Cumulative float64 `yaml:"cumulative"`
	Offset     int     `yaml:"offset"`
}

// PacingSettings controls the frame loop.
type PacingSettings struct {
	FPS    int `yaml:"fps"`     // starting frame rate
	MinFPS int `yaml:"min_fps"` // floor for the '-' key
	MaxFPS int `yaml:"max_fps"` // cap before '+' switches to uncapped
}

// FieldConfig converts the YAML settings to the simulation type.
func (c Config) FieldConfig() sim.FieldConfig {
	return sim.FieldConfig{
		Width:       c.Field.Width,
		Height:      c.Field.Height,
		PaddleH:     c.Field.PaddleHeight,
		PaddleSpeed: c.Field.PaddleSpeed,
	}
}

// AIConfig converts the YAML settings to the simulation type.
func (c Config) AIConfig() sim.AIConfig {
	buckets := make([]sim.AimBucket, len(c.AI.Buckets))
	for i, b := range c.AI.Buckets {
		buckets[i] = sim.AimBucket{Cumulative: b.Cumulative, Offset: b.Offset}
	}
	return sim.AIConfig{
		DefendProb:  c.AI.DefendProb,
		TriggerZone: c.AI.TriggerZone,
		Buckets:     buckets,
	}
}

// Validate checks the whole configuration once at startup. Field and AI
// checks are delegated to the simulation package; pacing is checked here.
func (c Config) Validate() error {
	if err := c.FieldConfig().Validate(); err != nil {
		return err
	}
	if err := c.AIConfig().Validate(); err != nil {
		return err
	}
	p := c.Pacing
	if p.MinFPS < 1 {
		return fmt.Errorf("config: min_fps %d must be at least 1", p.MinFPS)
	}
	if p.MaxFPS < p.MinFPS {
		return fmt.Errorf("config: max_fps %d below min_fps %d", p.MaxFPS, p.MinFPS)
	}
	if p.FPS < p.MinFPS || p.FPS > p.MaxFPS {
		return fmt.Errorf("config: fps %d outside [%d, %d]", p.FPS, p.MinFPS, p.MaxFPS)
	}
	return nil
}
