package grid

import "strconv"

// Cell identifies one grid position. It is a plain value: copy it freely,
// compare it with ==, and use it as a map key.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy). The result may lie outside any grid;
// callers check InBounds before reading it.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Grid is an immutable width × height field of booleans stored in row-major order.
// The zero value is a valid 0×0 grid.
type Grid struct {
	width, height int
	cells         []bool // len == width*height, index = y*width + x
}
