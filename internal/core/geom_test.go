package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		expected      int
	}{
		{"within range", 5, 0, 10, 5},
		{"below min", -3, 0, 10, 0},
		{"above max", 15, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
					tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs() gave wrong results")
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 7) != 2 || Min(7, 2) != 2 {
		t.Error("Min() gave wrong results")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Error("Max() gave wrong results")
	}
}
