// Package islands finds the connected regions ("islands") of true cells in a
// 2D boolean grid and reports each one as the bounding box of its cells.
//
// 🚀 What is islands?
//
//	A small, dependency-light toolkit built around one engine:
//		• grid/    — immutable row-major boolean field, text maps, seeded random fill
//		• island/  — discovery engine: row-major scan + iterative flood fill, 8- or 4-connectivity
//		• report/  — timed runs, text summaries, terminal viewer
//		• config/  — YAML run configuration
//		• cmd/islands — command-line tool tying them together
//
// ✨ Why?
//
//   - Iterative flood fill: no recursion, so winding islands cannot exhaust the stack
//   - Deterministic: same grid ⇒ same islands in the same order
//   - Pure functions: Find keeps all state local, concurrent calls are safe
//
// Quick ASCII example (8-connectivity):
//
//	##..#      [(0,0) (1,1)]
//	#...#      [(4,0) (4,1)]
//	..#..  ⇒   [(2,2) (2,2)]
//
//	go get github.com/katalvlaran/islands
package islands
