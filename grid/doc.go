// Package grid provides the immutable boolean field that island discovery
// reads from.
//
// What:
//
//   - Cell is an (X, Y) coordinate pair; it is comparable and can be used as a map or set key.
//   - Grid stores width × height booleans in row-major order (index = y·width + x).
//   - A cell is "land" iff its value is true; everything else is "water".
//
// Constructors:
//
//   - New(width, height, cells): from a flat row-major slice.
//   - FromRows(rows):            from a rectangular [][]bool.
//   - Parse(text):               from a text map ('#' land, '.' water).
//   - Random(width, height, opts...): independent random fill with a tunable land probability.
//
// Every constructor copies its input, so a Grid never changes after it is built
// and may be read from several goroutines at once.
//
// Complexity:
//
//   - Construction: O(W×H) time and memory.
//   - At, Land, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrNegativeDimension: width or height below zero.
//   - ErrSizeMismatch:      flat slice length differs from width × height.
//   - ErrNonRectangular:    rows of differing lengths.
//   - ErrUnknownSymbol:     Parse met a character that is neither land nor water.
package grid
