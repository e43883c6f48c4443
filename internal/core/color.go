package core

// Color identifies a cell style. The platform layer decides how each one
// maps to terminal attributes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray          // dim: borders, center line, control text
	ColorWhite
	ColorBrightWhite // bold: paddles and ball
	ColorYellow      // accent: title and status values
	ColorGreen       // score flash
)
