package component

import (
	"testing"

	"candy-defense/internal/defs"
)

func TestRectOverlapIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 9, Y: 9, W: 5, H: 5}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s (swapped): Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectAroundAndContains(t *testing.T) {
	r := RectAround(Position{X: 50, Y: 50}, 20, 10)
	if r != (Rect{X: 40, Y: 45, W: 20, H: 10}) {
		t.Fatalf("RectAround = %+v", r)
	}
	if r.Center() != (Position{X: 50, Y: 50}) {
		t.Errorf("Center = %+v", r.Center())
	}
	if !r.Contains(Position{X: 40, Y: 45}) || r.Contains(Position{X: 60, Y: 50}) {
		t.Errorf("Contains should include the top-left corner and exclude the right edge")
	}
}

func TestChebyshev(t *testing.T) {
	a := GridPos{X: 2, Y: 3}
	if d := a.Chebyshev(GridPos{X: 5, Y: 4}); d != 3 {
		t.Errorf("Chebyshev = %d, want 3", d)
	}
	if d := a.Chebyshev(GridPos{X: 0, Y: 7}); d != 4 {
		t.Errorf("Chebyshev = %d, want 4", d)
	}
	if d := a.Chebyshev(a); d != 0 {
		t.Errorf("Chebyshev to self = %d", d)
	}
}

func TestGridOf(t *testing.T) {
	if g := GridOf(Position{X: 70, Y: 80}); g != (GridPos{X: 1, Y: 0}) {
		t.Errorf("GridOf = %+v, want {1 0}", g)
	}
	if g := GridOf(Position{X: 0, Y: 79}); g.Y != -1 {
		t.Errorf("pixel in the top bar should map to row -1, got %+v", g)
	}
}

func TestRangeRectClampedToField(t *testing.T) {
	corner := &Tower{Pos: Position{X: 0, Y: 80}, Stats: defs.TierStats{Range: 3}}
	if r := corner.RangeRect(); r != (Rect{X: 0, Y: 80, W: 256, H: 256}) {
		t.Errorf("corner RangeRect = %+v", r)
	}
	middle := &Tower{Pos: Position{X: 320, Y: 400}, Stats: defs.TierStats{Range: 3}}
	if r := middle.RangeRect(); r != (Rect{X: 128, Y: 208, W: 448, H: 448}) {
		t.Errorf("middle RangeRect = %+v", r)
	}
}

func TestTowerInRange(t *testing.T) {
	tw := &Tower{Grid: GridPos{X: 4, Y: 4}, Stats: defs.TierStats{Range: 2}}
	if !tw.InRange(GridPos{X: 6, Y: 2}) {
		t.Error("diagonal corner of the square should be in range")
	}
	if tw.InRange(GridPos{X: 7, Y: 4}) {
		t.Error("three cells away should be out of range")
	}
}

func TestEnemyHealthFraction(t *testing.T) {
	e := &Enemy{MaxHealth: 40, Health: 10}
	if f := e.HealthFraction(); f != 0.25 {
		t.Errorf("fraction = %v, want 0.25", f)
	}
	e.Health = -5
	if f := e.HealthFraction(); f != 0 {
		t.Errorf("negative health fraction = %v, want 0", f)
	}
	if !e.IsDead() {
		t.Error("enemy with negative health should be dead")
	}
}

func TestStateNames(t *testing.T) {
	if TowerCoolingDown.String() != "cooling-down" || WaveWaitingForClear.String() != "waiting-for-clear" || PhaseLost.String() != "lost" {
		t.Error("unexpected state names")
	}
}
