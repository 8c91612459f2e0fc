package grid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/grid"
)

// TestRandom_Deterministic verifies that equal seeds produce equal grids
// and that seed 0 is the stable default.
func TestRandom_Deterministic(t *testing.T) {
	a, err := grid.Random(64, 48, grid.WithSeed(42))
	require.NoError(t, err)
	b, err := grid.Random(64, 48, grid.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := grid.Random(64, 48)
	require.NoError(t, err)
	d, err := grid.Random(64, 48, grid.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, c.String(), d.String())
}

// TestRandom_Probability checks the extremes and the rough density of the default.
func TestRandom_Probability(t *testing.T) {
	none, err := grid.Random(50, 50, grid.WithLandProbability(0))
	require.NoError(t, err)
	assert.Equal(t, 0, none.LandCount())

	all, err := grid.Random(50, 50, grid.WithLandProbability(1))
	require.NoError(t, err)
	assert.Equal(t, 2500, all.LandCount())

	def, err := grid.Random(200, 200, grid.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	density := float64(def.LandCount()) / float64(def.Len())
	assert.InDelta(t, grid.DefaultLandProbability, density, 0.02)
}

// TestRandom_Errors rejects negative dimensions and accepts zero area.
func TestRandom_Errors(t *testing.T) {
	_, err := grid.Random(-1, 3)
	assert.ErrorIs(t, err, grid.ErrNegativeDimension)

	_, err = grid.Random(math.MaxInt, 2)
	assert.ErrorIs(t, err, grid.ErrTooLarge)

	g, err := grid.Random(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

// TestOptions_Panic ensures option constructors reject meaningless input.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { grid.WithRand(nil) })
	assert.Panics(t, func() { grid.WithLandProbability(-0.1) })
	assert.Panics(t, func() { grid.WithLandProbability(1.5) })
}
