package island

import (
	"fmt"

	"github.com/katalvlaran/islands/grid"
)

// Island is the minimal axis-aligned bounding box of one connected region of land.
// TopLeft.X ≤ BottomRight.X and TopLeft.Y ≤ BottomRight.Y hold at all times;
// a single-cell island has TopLeft == BottomRight.
type Island struct {
	TopLeft, BottomRight grid.Cell
}

// singleton returns the box covering only c.
func singleton(c grid.Cell) Island {
	return Island{TopLeft: c, BottomRight: c}
}

// extend grows the box to include c. A coordinate cannot be below the minimum
// and above the maximum at once, hence the else branches.
func (is *Island) extend(c grid.Cell) {
	if c.X < is.TopLeft.X {
		is.TopLeft.X = c.X
	} else if c.X > is.BottomRight.X {
		is.BottomRight.X = c.X
	}
	if c.Y < is.TopLeft.Y {
		is.TopLeft.Y = c.Y
	} else if c.Y > is.BottomRight.Y {
		is.BottomRight.Y = c.Y
	}
}

// Width returns the number of columns spanned by the box.
func (is Island) Width() int { return is.BottomRight.X - is.TopLeft.X + 1 }

// Height returns the number of rows spanned by the box.
func (is Island) Height() int { return is.BottomRight.Y - is.TopLeft.Y + 1 }

// Contains reports whether c lies inside the box (not necessarily on land).
func (is Island) Contains(c grid.Cell) bool {
	return c.X >= is.TopLeft.X && c.X <= is.BottomRight.X &&
		c.Y >= is.TopLeft.Y && c.Y <= is.BottomRight.Y
}

// String formats the island as "[(x0,y0) (x1,y1)]".
func (is Island) String() string {
	return fmt.Sprintf("[%v %v]", is.TopLeft, is.BottomRight)
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbour offsets for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn4 {
		return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
}

// WorkList selects how pending cells of a flood fill are ordered.
type WorkList int

const (
	// DepthFirst expands the most recently discovered cell first (LIFO stack).
	DepthFirst WorkList = iota
	// BreadthFirst expands cells in discovery order (FIFO queue).
	BreadthFirst
)

// Visited selects the representation of the visited set.
type Visited int

const (
	// DenseVisited keeps one flag per grid cell. Fastest when land is common.
	DenseVisited Visited = iota
	// SparseVisited keeps a hash set of visited grid.Cell values.
	// Memory follows the number of land cells rather than the grid area.
	SparseVisited
)

// Option configures Find.
type Option func(*Options)

// Options holds the configurable parameters of Find.
type Options struct {
	// Conn chooses 8- or 4-directional adjacency. Default Conn8.
	Conn Connectivity

	// WorkList chooses the flood-fill order. It never changes the result.
	WorkList WorkList

	// Visited chooses the visited-set representation. It never changes the result.
	Visited Visited

	// OnVisit, if non-nil, is called once for each land cell when it is
	// attributed to the island currently being filled.
	OnVisit func(c grid.Cell)

	// OnIsland, if non-nil, is called with each island once its fill completes,
	// before the island is appended to the result.
	OnIsland func(is Island)
}

// DefaultOptions returns Options with:
//   - Conn8 adjacency
//   - DepthFirst work-list
//   - DenseVisited set
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Conn:     Conn8,
		WorkList: DepthFirst,
		Visited:  DenseVisited,
	}
}

// WithConnectivity sets the adjacency rule. Panics on unknown values.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic(fmt.Sprintf("island: WithConnectivity(%d)", c))
	}
	return func(o *Options) {
		o.Conn = c
	}
}

// WithWorkList sets the flood-fill order. Panics on unknown values.
func WithWorkList(w WorkList) Option {
	if w != DepthFirst && w != BreadthFirst {
		panic(fmt.Sprintf("island: WithWorkList(%d)", w))
	}
	return func(o *Options) {
		o.WorkList = w
	}
}

// WithVisited sets the visited-set representation. Panics on unknown values.
func WithVisited(v Visited) Option {
	if v != DenseVisited && v != SparseVisited {
		panic(fmt.Sprintf("island: WithVisited(%d)", v))
	}
	return func(o *Options) {
		o.Visited = v
	}
}

// WithOnVisit installs fn as a per-cell hook.
func WithOnVisit(fn func(c grid.Cell)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnIsland installs fn as a per-island hook.
func WithOnIsland(fn func(is Island)) Option {
	return func(o *Options) {
		o.OnIsland = fn
	}
}
