package sim

import "fmt"

// Default match parameters, matching the classic 80x25 field.
const (
	DefaultWidth       = 80
	DefaultHeight      = 25
	DefaultPaddleH     = 7
	DefaultPaddleSpeed = 2
	DefaultTriggerZone = 5
	DefaultDefendProb  = 0.85
)

// FieldConfig describes the immutable playing field. It is loaded into the
// params table once per match and never changes afterwards.
type FieldConfig struct {
	Width       int // field width in cells
	Height      int // field height in cells
	PaddleH     int // paddle height in cells
	PaddleSpeed int // max defensive paddle movement per tick
}

// DefaultField returns the standard 80x25 field.
func DefaultField() FieldConfig {
	return FieldConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		PaddleH:     DefaultPaddleH,
		PaddleSpeed: DefaultPaddleSpeed,
	}
}

// Validate rejects degenerate field geometry. A bad field is a startup
// error, not something the transition should discover mid-frame.
func (c FieldConfig) Validate() error {
	if c.Width < 20 {
		return fmt.Errorf("sim: field width %d too small (min 20)", c.Width)
	}
	if c.PaddleH < 5 {
		return fmt.Errorf("sim: paddle height %d too small (min 5 for hit zones)", c.PaddleH)
	}
	if c.Height < c.PaddleH+4 {
		return fmt.Errorf("sim: field height %d too small for paddle height %d", c.Height, c.PaddleH)
	}
	if c.PaddleSpeed < 1 {
		return fmt.Errorf("sim: paddle speed %d must be at least 1", c.PaddleSpeed)
	}
	return nil
}

// AimBucket is one arm of the trick-shot selection: a uniform draw below
// Cumulative (and above all earlier buckets) aims the paddle top Offset
// cells above the incoming ball.
type AimBucket struct {
	Cumulative float64
	Offset     int
}

// AIConfig tunes the computer players. Both sides share one config.
// The probabilities are gameplay constants, not correctness knobs: lowering
// DefendProb shortens rallies, the bucket weights shape the shot mix.
type AIConfig struct {
	// DefendProb is the chance per tick that a paddle tracks the ball
	// while it is far away. The remainder of the time the paddle holds
	// still, which is what makes the players beatable.
	DefendProb float64

	// TriggerZone is how close (in cells) the ball must be to a paddle's
	// edge before that side switches from defending to aiming a shot.
	TriggerZone int

	// Buckets are the weighted trick-shot choices, in ascending cumulative
	// order. The last bucket must have Cumulative == 1.
	Buckets []AimBucket
}

// DefaultAI returns the stock AI tuning: aim offsets
// 0/1/3/5/6 with cumulative weights 0.25/0.50/0.55/0.75/1.0. The uneven
// offset spacing is intentional; it biases shots toward steep angles.
func DefaultAI() AIConfig {
	return AIConfig{
		DefendProb:  DefaultDefendProb,
		TriggerZone: DefaultTriggerZone,
		Buckets: []AimBucket{
			{Cumulative: 0.25, Offset: 0},
			{Cumulative: 0.50, Offset: 1},
			{Cumulative: 0.55, Offset: 3},
			{Cumulative: 0.75, Offset: 5},
			{Cumulative: 1.00, Offset: 6},
		},
	}
}

// Validate rejects malformed AI tuning.
func (c AIConfig) Validate() error {
	if c.DefendProb < 0 || c.DefendProb > 1 {
		return fmt.Errorf("sim: defend probability %v outside [0,1]", c.DefendProb)
	}
	if c.TriggerZone < 0 {
		return fmt.Errorf("sim: trigger zone %d must be non-negative", c.TriggerZone)
	}
	if len(c.Buckets) < 2 {
		return fmt.Errorf("sim: at least two aim buckets required, got %d", len(c.Buckets))
	}
	prev := 0.0
	for i, b := range c.Buckets {
		if b.Cumulative <= prev || b.Cumulative > 1 {
			return fmt.Errorf("sim: bucket %d cumulative %v not ascending within (0,1]", i, b.Cumulative)
		}
		if b.Offset < 0 {
			return fmt.Errorf("sim: bucket %d offset %d must be non-negative", i, b.Offset)
		}
		prev = b.Cumulative
	}
	if last := c.Buckets[len(c.Buckets)-1].Cumulative; last != 1 {
		return fmt.Errorf("sim: last bucket cumulative %v must be exactly 1", last)
	}
	return nil
}
