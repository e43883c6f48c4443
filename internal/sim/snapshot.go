package sim

// Snapshot is an immutable copy of the match state after a tick.
// Primitive types only so it is cheap to copy and stable to compare.
type Snapshot struct {
	Tick     uint64
	PaddleAY int // top row of the left paddle
	PaddleBY int // top row of the right paddle
	BallX    int
	BallY    int
	VX       int // -1 or +1
	VY       int // -2..+2
	ScoreA   int
	ScoreB   int
}

// Leader returns "A", "B" or "" for a tied score.
func (s Snapshot) Leader() string {
	switch {
	case s.ScoreA > s.ScoreB:
		return "A"
	case s.ScoreB > s.ScoreA:
		return "B"
	default:
		return ""
	}
}
