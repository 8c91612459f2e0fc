// Package island discovers the connected regions ("islands") of land cells in
// a grid.Grid and reports each one as the axis-aligned bounding box of its cells.
//
// What:
//
//   - Find scans the grid in row-major order (y outer, x inner).
//   - Every land cell not yet attributed to an island seeds a flood fill that
//     marks all reachable land cells visited and grows the island's box.
//   - Islands are returned in the order their first cell is met by the scan.
//
// Adjacency is 8-directional by default (cells touching at a corner belong to
// the same island); WithConnectivity(Conn4) restricts it to N, E, S, W.
//
// The flood fill keeps its pending cells on an explicit work-list instead of
// the call stack, so a long winding island cannot overflow the goroutine
// stack. Auxiliary memory is bounded by the size of the island being filled.
//
// An Island is a bound, not a mask: its box usually contains water cells
// (holes, concavities) and may overlap the box of another island. Islands
// themselves never share a cell.
//
// Complexity:
//
//   - Find: O(W×H×d) time, d = 8 or 4; every cell is visited at most once.
//   - Memory: O(W×H) for the visited set, O(island) for the work-list.
//
// Options:
//
//   - WithConnectivity(Conn8 | Conn4)          neighbour rule, default Conn8.
//   - WithWorkList(DepthFirst | BreadthFirst)  LIFO stack or FIFO queue, default DepthFirst.
//   - WithVisited(DenseVisited | SparseVisited) bitmap or hash set of grid.Cell, default DenseVisited.
//   - WithOnVisit(fn)                          called once for every land cell, in attribution order.
//   - WithOnIsland(fn)                         called once for every island as it is completed.
//
// Find has no error surface: the grid is immutable and every coordinate it
// generates is bounds-checked before it is read. It is synchronous and keeps
// all mutable state local to the call, so concurrent calls on the same grid
// are safe.
package island
