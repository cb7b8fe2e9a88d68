package grid

import "fmt"

// Direction is a cardinal rail direction.
type Direction uint8

// The four cardinal directions, in the fixed order the wire contract
// between encode and decode relies on: L, R, U, D.
const (
	L Direction = iota
	R
	U
	D
)

// Directions lists the four cardinal directions in their fixed wire order.
var Directions = [4]Direction{L, R, U, D}

// dx, dy give the displacement of each Direction: L=(-1,0), R=(+1,0),
// U=(0,-1), D=(0,+1).
var dx = [4]int{-1, +1, 0, 0}
var dy = [4]int{0, 0, -1, +1}
var opposites = [4]Direction{R, L, D, U}
var letters = [4]byte{'L', 'R', 'U', 'D'}

// Delta returns the (dx, dy) displacement of d.
func (d Direction) Delta() (int, int) {
	return dx[d], dy[d]
}

// Opposite returns the reverse of d. Opposite is an involution:
// d.Opposite().Opposite() == d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// String renders d as its single-letter code (L, R, U, or D).
func (d Direction) String() string {
	return string(letters[d])
}

// Cell is a point on the grid.
type Cell struct {
	X, Y int
}

// String renders c as "x,y", the identifier used for precheck-graph
// vertices in cellgraph.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Neighbor returns the cell one step from c in direction d.
func (c Cell) Neighbor(d Direction) Cell {
	ddx, ddy := d.Delta()

	return Cell{X: c.X + ddx, Y: c.Y + ddy}
}

// InBounds reports whether c lies within a grid of width w and height h.
func (c Cell) InBounds(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// InBoundsDir reports whether moving from c in direction d stays within a
// grid of width w and height h, covering invariant 2 (boundary
// consistency) directly: L is never legal on column 0, R never on column
// w-1, U never on row 0, D never on row h-1.
func (c Cell) InBoundsDir(d Direction, w, h int) bool {
	return c.Neighbor(d).InBounds(w, h)
}
