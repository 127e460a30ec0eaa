// component/movement.go
package component

import "candy-defense/pkg/gridmap"

// Position — точка в экранных координатах (пиксели).
type Position struct {
	X, Y float64
}

func (p Position) Add(o Position) Position  { return Position{p.X + o.X, p.Y + o.Y} }
func (p Position) Sub(o Position) Position  { return Position{p.X - o.X, p.Y - o.Y} }
func (p Position) Scale(k float64) Position { return Position{p.X * k, p.Y * k} }

// GridPos is a cell coordinate on the map.
type GridPos struct {
	X, Y int
}

// Chebyshev returns max(|dx|, |dy|), the metric behind square tower ranges.
func (g GridPos) Chebyshev(o GridPos) int {
	dx, dy := g.X-o.X, g.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// GridOf returns the cell containing a screen point.
func GridOf(p Position) GridPos {
	c := gridmap.ScreenToCell(p.X, p.Y)
	return GridPos{X: c.X, Y: c.Y}
}

// Rect is an axis-aligned box, X/Y at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround centres a w×h box on p.
func RectAround(p Position, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// Overlaps is a strict overlap test; boxes that only touch do not collide.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Center() Position {
	return Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r (right/bottom edges excluded).
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
