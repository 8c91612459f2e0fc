package grid

import "fmt"

// Random builds a width × height grid where every cell is independently land
// with the configured probability (DefaultLandProbability unless
// WithLandProbability is given). The same seed always produces the same grid.
// Complexity: O(W×H) time and memory.
func Random(width, height int, opts ...Option) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("Random(%d, %d): %w", width, height, ErrNegativeDimension)
	}
	if overflows(width, height) {
		return nil, fmt.Errorf("Random(%d, %d): %w", width, height, ErrTooLarge)
	}
	cfg := newRandomConfig(opts...)

	cells := make([]bool, width*height)
	// Float64 is in [0,1): p==0 never yields land, p==1 always does.
	for i := range cells {
		cells[i] = cfg.rng.Float64() < cfg.landProbability
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}
