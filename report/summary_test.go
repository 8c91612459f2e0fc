package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/island"
	"github.com/katalvlaran/islands/report"
)

// TestMeasure verifies the summary fields of a timed run.
func TestMeasure(t *testing.T) {
	g := parse(t, `
		##...#
		#....#
		.....#
		#.....
	`)
	islands, s := report.Measure(g)

	require.Len(t, islands, 3)
	assert.Equal(t, 6, s.Width)
	assert.Equal(t, 4, s.Height)
	assert.Equal(t, 7, s.LandCells)
	assert.Equal(t, 3, s.Islands)
	assert.Equal(t, islands[0], s.Largest, "2x2 corner box beats the 1x3 column")
	assert.GreaterOrEqual(t, s.Elapsed, time.Duration(0))
	assert.InDelta(t, 7.0/24.0, s.LandRatio(), 1e-9)
}

// TestSummarize_Empty covers nil grids and grids without land.
func TestSummarize_Empty(t *testing.T) {
	s := report.Summarize(nil, nil, 0)
	assert.Zero(t, s.LandRatio())
	assert.Equal(t, island.Island{}, s.Largest)

	g, err := grid.New(3, 3, make([]bool, 9))
	require.NoError(t, err)
	_, s = report.Measure(g)
	assert.Equal(t, 0, s.Islands)

	var buf bytes.Buffer
	require.NoError(t, report.Fprint(&buf, s))
	assert.NotContains(t, buf.String(), "largest")
}

// TestSummary_String verifies the one-line report format.
func TestSummary_String(t *testing.T) {
	s := report.Summary{Width: 1000, Height: 1000, Islands: 21437, Elapsed: 41234567 * time.Nanosecond}
	assert.Equal(t, "found 21,437 islands in 41.23ms in the 1,000 x 1,000 map!", s.String())
}

// TestFprint verifies the full text report.
func TestFprint(t *testing.T) {
	s := report.Summary{
		Width: 10, Height: 10, LandCells: 25, Islands: 2,
		Largest: island.Island{BottomRight: grid.Cell{X: 3, Y: 1}},
		Elapsed: 1500 * time.Microsecond,
	}
	var buf bytes.Buffer
	require.NoError(t, report.Fprint(&buf, s))
	assert.Equal(t,
		"found 2 islands in 1.5ms in the 10 x 10 map!\n"+
			"land: 25 cells (25.0%)\n"+
			"largest box: [(0,0) (3,1)] 4x2\n",
		buf.String())
}

// TestFprintIslands lists one island per line.
func TestFprintIslands(t *testing.T) {
	g := parse(t, "#.#\n#..")
	var buf bytes.Buffer
	require.NoError(t, report.FprintIslands(&buf, island.Find(g)))
	assert.Equal(t, "#0 [(0,0) (0,1)] 1x2\n#1 [(2,0) (2,0)] 1x1\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestFprint_WriteError propagates writer failures.
func TestFprint_WriteError(t *testing.T) {
	assert.Error(t, report.Fprint(failingWriter{}, report.Summary{}))
	assert.Error(t, report.FprintIslands(failingWriter{}, []island.Island{{}}))
}
