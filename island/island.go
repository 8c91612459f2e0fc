package island

import (
	"fmt"

	"github.com/katalvlaran/islands/grid"
)

// finder carries the state of one discovery run.
type finder struct {
	g       *grid.Grid
	opts    Options
	offsets [][2]int
	visited visitedSet
	work    workList
}

// Find returns one Island per connected region of land cells in g, in the
// order the row-major scan first meets each region.
//
// Behavior:
//  1. Scan cells with y outer and x inner.
//  2. A land cell not yet visited seeds a new island: its box starts as the
//     single cell, the cell is marked visited and pushed on the work-list.
//  3. Pop cells until the work-list is empty. Each in-bounds, land, unvisited
//     neighbour extends the box, is marked visited and is pushed.
//  4. Append the completed island and resume the scan.
//
// A nil or zero-area grid yields no islands and no traversal.
//
// Complexity: O(W·H·d) time, O(W·H) memory (d = 8 or 4).
func Find(g *grid.Grid, opts ...Option) []Island {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil || g.Len() == 0 {
		return nil
	}

	return newFinder(g, o).run()
}

// FindIn is Find with the grid dimensions stated by the caller.
// It panics if width and height disagree with g, which is a programming error.
func FindIn(g *grid.Grid, width, height int, opts ...Option) []Island {
	gw, gh := 0, 0
	if g != nil {
		gw, gh = g.Width(), g.Height()
	}
	if width != gw || height != gh {
		panic(fmt.Sprintf("island: FindIn(%dx%d) on a %dx%d grid", width, height, gw, gh))
	}

	return Find(g, opts...)
}

func newFinder(g *grid.Grid, o Options) *finder {
	return &finder{
		g:       g,
		opts:    o,
		offsets: o.Conn.offsets(),
		visited: newVisitedSet(o.Visited, g),
		work:    newWorkList(o.WorkList),
	}
}

// run performs the row-major scan.
func (f *finder) run() []Island {
	var islands []Island
	w, h := f.g.Width(), f.g.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !f.g.At(x, y) {
				continue // water
			}
			c := grid.Cell{X: x, Y: y}
			if f.visited.has(c) {
				continue
			}
			islands = append(islands, f.fill(c))
		}
	}

	return islands
}

// fill floods the island containing start and returns its bounding box.
func (f *finder) fill(start grid.Cell) Island {
	is := singleton(start)
	f.mark(start)
	f.work.push(start)

	w, h := f.g.Width(), f.g.Height()
	for !f.work.empty() {
		c := f.work.pop()
		for _, d := range f.offsets {
			n := c.Add(d[0], d[1])
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			if !f.g.At(n.X, n.Y) || f.visited.has(n) {
				continue
			}
			is.extend(n)
			f.mark(n)
			f.work.push(n)
		}
	}

	if f.opts.OnIsland != nil {
		f.opts.OnIsland(is)
	}

	return is
}

// mark adds c to the visited set and reports it to OnVisit.
func (f *finder) mark(c grid.Cell) {
	f.visited.put(c)
	if f.opts.OnVisit != nil {
		f.opts.OnVisit(c)
	}
}
