package core

import "testing"

func TestBoxCatches(t *testing.T) {
	slider := Box{X: 10, Y: 20, W: 8, H: 1}

	tests := []struct {
		name     string
		drop     Box
		expected bool
	}{
		{
			name:     "overlapping",
			drop:     Box{X: 12, Y: 19.5, W: 2, H: 1},
			expected: true,
		},
		{
			name:     "bottom exactly on slider top",
			drop:     Box{X: 12, Y: 19, W: 2, H: 1},
			expected: true,
		},
		{
			name:     "above slider",
			drop:     Box{X: 12, Y: 18.9, W: 2, H: 1},
			expected: false,
		},
		{
			name:     "top exactly on slider bottom",
			drop:     Box{X: 12, Y: 21, W: 2, H: 1},
			expected: false,
		},
		{
			name:     "right edge touching slider left",
			drop:     Box{X: 8, Y: 20, W: 2, H: 1},
			expected: false,
		},
		{
			name:     "left edge touching slider right",
			drop:     Box{X: 18, Y: 20, W: 2, H: 1},
			expected: false,
		},
		{
			name:     "partial horizontal overlap",
			drop:     Box{X: 17.5, Y: 20, W: 2, H: 1},
			expected: true,
		},
		{
			name:     "drop wider than slider",
			drop:     Box{X: 5, Y: 20, W: 20, H: 1},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.drop.Catches(slider)
			if result != tc.expected {
				t.Errorf("Catches() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 1.5, Y: 2, W: 3, H: 4.5}

	if b.Left() != 1.5 || b.Top() != 2 {
		t.Errorf("Left/Top = (%f, %f), expected (1.5, 2)", b.Left(), b.Top())
	}
	if b.Right() != 4.5 {
		t.Errorf("Right() = %f, expected 4.5", b.Right())
	}
	if b.Bottom() != 6.5 {
		t.Errorf("Bottom() = %f, expected 6.5", b.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{3.0, 0.0, -2.0, 0.0}, // inverted bounds pin to min
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
