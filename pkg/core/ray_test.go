package core

import "testing"

func TestRay_Construction(t *testing.T) {
	origin := NewPoint(1, 2, 3)
	direction := NewVector(4, 5, 6)

	r := NewRay(origin, direction)
	if !r.Origin.Equals(origin) || !r.Direction.Equals(direction) {
		t.Errorf("Expected ray to keep origin %v and direction %v, got %v and %v",
			origin, direction, r.Origin, r.Direction)
	}
}

func TestRay_Construction_Preconditions(t *testing.T) {
	t.Run("non-point origin", func(t *testing.T) {
		expectPanic(t, func() { NewRay(NewVector(1, 2, 3), NewVector(4, 5, 6)) })
	})
	t.Run("non-vector direction", func(t *testing.T) {
		expectPanic(t, func() { NewRay(NewPoint(1, 2, 3), NewPoint(4, 5, 6)) })
	})
}

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{t: 0, expected: NewPoint(2, 3, 4)},
		{t: 1, expected: NewPoint(3, 3, 4)},
		{t: -1, expected: NewPoint(1, 3, 4)},
		{t: 2.5, expected: NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equals(tt.expected) {
			t.Errorf("Position(%v): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	t.Run("translation", func(t *testing.T) {
		got := r.Transform(Translation(3, 4, 5))
		if !got.Origin.Equals(NewPoint(4, 6, 8)) {
			t.Errorf("Expected origin (4, 6, 8), got %v", got.Origin)
		}
		if !got.Direction.Equals(NewVector(0, 1, 0)) {
			t.Errorf("Expected direction unchanged, got %v", got.Direction)
		}
	})

	t.Run("scaling does not renormalize the direction", func(t *testing.T) {
		got := r.Transform(Scaling(2, 3, 4))
		if !got.Origin.Equals(NewPoint(2, 6, 12)) {
			t.Errorf("Expected origin (2, 6, 12), got %v", got.Origin)
		}
		if !got.Direction.Equals(NewVector(0, 3, 0)) {
			t.Errorf("Expected direction (0, 3, 0), got %v", got.Direction)
		}
	})
}
