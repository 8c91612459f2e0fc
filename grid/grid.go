package grid

import (
	"fmt"
	"math"
	"strings"
)

// New constructs a Grid from a flat row-major slice of width × height values.
// The slice is copied; later changes to cells do not affect the Grid.
// A zero-area grid (width or height == 0) is valid and has no cells.
// Returns ErrNegativeDimension or ErrSizeMismatch on bad input.
// Complexity: O(W×H) time and memory.
func New(width, height int, cells []bool) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", width, height, ErrNegativeDimension)
	}
	if overflows(width, height) {
		return nil, fmt.Errorf("New(%d, %d): %w", width, height, ErrTooLarge)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("New(%d, %d) with %d cells: %w", width, height, len(cells), ErrSizeMismatch)
	}
	g := &Grid{width: width, height: height, cells: make([]bool, len(cells))}
	copy(g.cells, cells)

	return g, nil
}

// FromRows constructs a Grid from rows[y][x]. Zero rows yield a 0×0 grid;
// rows of differing lengths yield ErrNonRectangular.
// Complexity: O(W×H) time and memory.
func FromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	h, w := len(rows), len(rows[0])
	cells := make([]bool, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", y, len(row), w, ErrNonRectangular)
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns width × height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// It does not check bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Cell.
// It panics unless 0 ≤ idx < Len(); a zero-area grid has no valid index.
func (g *Grid) Coordinate(idx int) Cell {
	if idx < 0 || idx >= len(g.cells) {
		panic(fmt.Sprintf("grid: Coordinate(%d) outside %dx%d grid", idx, g.width, g.height))
	}

	return Cell{X: idx % g.width, Y: idx / g.width}
}

// overflows reports whether width × height exceeds math.MaxInt.
// Both arguments are non-negative.
func overflows(width, height int) bool {
	return width > 0 && height > math.MaxInt/width
}

// At returns the value at (x,y). The caller guarantees InBounds(x, y);
// out-of-range coordinates panic with an index error.
func (g *Grid) At(x, y int) bool {
	return g.cells[y*g.width+x]
}

// Land reports whether c is inside the grid and holds land.
func (g *Grid) Land(c Cell) bool {
	return g.InBounds(c.X, c.Y) && g.cells[c.Y*g.width+c.X]
}

// LandCount returns the number of land cells.
// Complexity: O(W×H).
func (g *Grid) LandCount() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}

	return n
}

// Rows returns a copy of the grid as rows[y][x].
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range rows {
		rows[y] = make([]bool, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}

	return rows
}

// String renders the grid with '#' for land and '.' for water, one line per row.
// The output is accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] {
				sb.WriteByte(LandSymbol)
			} else {
				sb.WriteByte(WaterSymbol)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
