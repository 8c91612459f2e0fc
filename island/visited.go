package island

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/islands/grid"
)

// visitedSet records the land cells already attributed to an island.
// It only grows during a run and is discarded when Find returns.
type visitedSet interface {
	has(c grid.Cell) bool
	put(c grid.Cell)
}

func newVisitedSet(v Visited, g *grid.Grid) visitedSet {
	if v == SparseVisited {
		return &sparseVisited{set: mapset.New[grid.Cell]()}
	}

	return &denseVisited{g: g, seen: make([]bool, g.Len())}
}

// denseVisited keeps one flag per grid cell, indexed row-major.
type denseVisited struct {
	g    *grid.Grid
	seen []bool
}

func (d *denseVisited) has(c grid.Cell) bool { return d.seen[d.g.Index(c.X, c.Y)] }

func (d *denseVisited) put(c grid.Cell) { d.seen[d.g.Index(c.X, c.Y)] = true }

// sparseVisited keeps a hash set of cells.
type sparseVisited struct {
	set mapset.Set[grid.Cell]
}

func (s *sparseVisited) has(c grid.Cell) bool { return s.set.Has(c) }
func (s *sparseVisited) put(c grid.Cell)      { s.set.Put(c) }
