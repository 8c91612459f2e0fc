package grid

import "errors"

var (
	// ErrNegativeDimension indicates a width or height below zero.
	ErrNegativeDimension = errors.New("grid: width and height must be non-negative")
	// ErrSizeMismatch indicates the flat cell slice does not hold width × height values.
	ErrSizeMismatch = errors.New("grid: cell count does not match width × height")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTooLarge indicates width × height does not fit in an int.
	ErrTooLarge = errors.New("grid: width × height overflows int")
	// ErrUnknownSymbol indicates a text map character that is neither land nor water.
	ErrUnknownSymbol = errors.New("grid: unknown map symbol")
)
