// Package glyph renders the retro 3x5 block digits used for the score.
package glyph

import "github.com/zeutschler/sqlpong/internal/core"

// Digit dimensions and the horizontal pitch between digits of one number.
const (
	DigitW = 3
	DigitH = 5
	Pitch  = 4 // 3 columns of glyph plus 1 of spacing
)

// digits holds the bitmap for each decimal digit, top row first.
var digits = [10][DigitH]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// DrawDigit paints a single digit with its top-left corner at (x, y).
// Digits outside 0-9 draw nothing; a bad digit is cosmetic, not a fault.
func DrawDigit(dst *core.Screen, digit, x, y int, c core.Color) {
	if digit < 0 || digit > 9 {
		return
	}
	for row, line := range digits[digit] {
		col := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetCell(x+col, y+row, r, c)
			}
			col++
		}
	}
}

// DrawNumber paints a non-negative number left-to-right from (x, y).
func DrawNumber(dst *core.Screen, n, x, y int, c core.Color) {
	if n < 0 {
		return
	}
	for i, d := range digitsOf(n) {
		DrawDigit(dst, d, x+i*Pitch, y, c)
	}
}

// Width returns the number of columns DrawNumber uses for n, spacing
// included up to the last digit.
func Width(n int) int {
	return len(digitsOf(n))*Pitch - 1
}

func digitsOf(n int) []int {
	if n < 10 {
		return []int{n}
	}
	var out []int
	for n > 0 {
		out = append([]int{n % 10}, out...)
		n /= 10
	}
	return out
}
