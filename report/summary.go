package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/island"
)

// Summary condenses one discovery run.
type Summary struct {
	Width, Height int
	LandCells     int
	Islands       int
	// Largest is the island with the largest bounding box (by box area);
	// ties keep the first one found. Zero when Islands == 0.
	Largest island.Island
	Elapsed time.Duration
}

// Measure runs island.Find on g with opts and times it.
// Only the discovery itself is timed; counting land cells is not.
func Measure(g *grid.Grid, opts ...island.Option) ([]island.Island, Summary) {
	start := time.Now()
	islands := island.Find(g, opts...)
	elapsed := time.Since(start)

	return islands, Summarize(g, islands, elapsed)
}

// Summarize builds a Summary for islands found on g in elapsed time.
func Summarize(g *grid.Grid, islands []island.Island, elapsed time.Duration) Summary {
	s := Summary{Islands: len(islands), Elapsed: elapsed}
	if g != nil {
		s.Width, s.Height = g.Width(), g.Height()
		s.LandCells = g.LandCount()
	}
	best := 0
	for _, is := range islands {
		if a := is.Width() * is.Height(); a > best {
			best = a
			s.Largest = is
		}
	}

	return s
}

// LandRatio returns the fraction of cells that are land, or 0 for an empty grid.
func (s Summary) LandRatio() float64 {
	if s.Width == 0 || s.Height == 0 {
		return 0
	}

	return float64(s.LandCells) / float64(s.Width*s.Height)
}

// String returns the one-line report, e.g.
// "found 12,345 islands in 41.23ms in the 1,000 x 1,000 map!".
func (s Summary) String() string {
	return fmt.Sprintf("found %s islands in %v in the %s x %s map!",
		humanize.Comma(int64(s.Islands)),
		s.Elapsed.Round(10*time.Microsecond),
		humanize.Comma(int64(s.Width)),
		humanize.Comma(int64(s.Height)),
	)
}

// Fprint writes the one-line report followed by land and largest-box details.
func Fprint(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintln(w, s.String()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "land: %s cells (%.1f%%)\n",
		humanize.Comma(int64(s.LandCells)), 100*s.LandRatio()); err != nil {
		return err
	}
	if s.Islands == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "largest box: %v %dx%d\n", s.Largest, s.Largest.Width(), s.Largest.Height())

	return err
}

// FprintIslands writes one line per island: its index, box, and box size.
func FprintIslands(w io.Writer, islands []island.Island) error {
	for i, is := range islands {
		if _, err := fmt.Fprintf(w, "#%d %v %dx%d\n", i, is, is.Width(), is.Height()); err != nil {
			return err
		}
	}

	return nil
}
