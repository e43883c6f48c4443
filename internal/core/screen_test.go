package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	s.SetCell(4, 2, 'Y', ColorYellow)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorYellow {
		t.Errorf("GetCell(4, 2) = %+v, expected styled 'Y'", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, 'X', ColorGreen)

	s.Clear()
	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Cell after Clear() = %+v, expected unstyled space", cell)
	}
}

func TestScreenOutOfBoundsClipped(t *testing.T) {
	s := NewScreen(10, 5)

	// None of these may panic or affect the buffer.
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, expected space", got)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("Out-of-bounds write landed at (%d, %d)", x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi", ColorWhite)
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText() did not place the characters")
	}

	// Text running off the right edge is clipped, not wrapped.
	s.DrawText(8, 0, "long", ColorWhite)
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText() clipped visible prefix")
	}
	if s.Get(0, 1) == 'n' {
		t.Error("DrawText() wrapped to the next row")
	}
}

func TestScreenRowAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 0, 'b')
	s.Set(1, 1, 'c')

	if got := s.Row(0); got != "a b" {
		t.Errorf("Row(0) = %q, expected %q", got, "a b")
	}
	if got := s.Row(7); got != "   " {
		t.Errorf("Row out of range = %q, expected all spaces", got)
	}
	if got := s.String(); got != "a b\n c " {
		t.Errorf("String() = %q, expected %q", got, "a b\n c ")
	}
}
