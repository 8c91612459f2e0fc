package report

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/islands/grid"
	"github.com/katalvlaran/islands/island"
)

// Runes drawn by View.
const (
	landRune   = '#'
	waterRune  = '.'
	cornerRune = '+'
	hEdgeRune  = '-'
	vEdgeRune  = '|'
)

// View renders a grid and the outlines of its islands onto a tcell.Screen.
// Water cells on an island's bounding box are drawn as the box outline;
// land cells on it keep '#' but take BoxStyle. The grid is shown from
// (OffsetX, OffsetY); when Status is non-empty it occupies the bottom row.
type View struct {
	Grid    *grid.Grid
	Islands []island.Island
	Status  string

	OffsetX, OffsetY int

	LandStyle   tcell.Style
	WaterStyle  tcell.Style
	BoxStyle    tcell.Style
	StatusStyle tcell.Style
}

// NewView returns a View of g and islands with the default palette.
func NewView(g *grid.Grid, islands []island.Island) *View {
	return &View{
		Grid:        g,
		Islands:     islands,
		LandStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		WaterStyle:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		BoxStyle:    tcell.StyleDefault.Foreground(tcell.ColorYellow),
		StatusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// viewport returns the number of grid columns and rows the screen can show.
func (v *View) viewport(s tcell.Screen) (int, int) {
	w, h := s.Size()
	if v.Status != "" && h > 0 {
		h--
	}

	return w, h
}

// Draw paints the visible part of the grid, the island outlines, and the
// status line, then shows the result.
func (v *View) Draw(s tcell.Screen) {
	s.Clear()
	w, h := v.viewport(s)

	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			x, y := sx+v.OffsetX, sy+v.OffsetY
			if !v.Grid.InBounds(x, y) {
				continue
			}
			if v.Grid.At(x, y) {
				s.SetContent(sx, sy, landRune, nil, v.LandStyle)
			} else {
				s.SetContent(sx, sy, waterRune, nil, v.WaterStyle)
			}
		}
	}

	for _, is := range v.Islands {
		v.drawBox(s, is, w, h)
	}

	if v.Status != "" {
		_, sh := s.Size()
		col := 0
		for _, r := range v.Status {
			if col >= w {
				break
			}
			s.SetContent(col, sh-1, r, nil, v.StatusStyle)
			col++
		}
	}

	s.Show()
}

// drawBox outlines one island, clipped to the w × h viewport.
func (v *View) drawBox(s tcell.Screen, is island.Island, w, h int) {
	x0, y0 := is.TopLeft.X-v.OffsetX, is.TopLeft.Y-v.OffsetY
	x1, y1 := is.BottomRight.X-v.OffsetX, is.BottomRight.Y-v.OffsetY
	if x1 < 0 || y1 < 0 || x0 >= w || y0 >= h {
		return
	}

	put := func(sx, sy int, r rune) {
		if sx < 0 || sy < 0 || sx >= w || sy >= h {
			return
		}
		if v.Grid.At(sx+v.OffsetX, sy+v.OffsetY) {
			r = landRune
		}
		s.SetContent(sx, sy, r, nil, v.BoxStyle)
	}

	for sx := x0 + 1; sx < x1; sx++ {
		put(sx, y0, hEdgeRune)
		put(sx, y1, hEdgeRune)
	}
	for sy := y0 + 1; sy < y1; sy++ {
		put(x0, sy, vEdgeRune)
		put(x1, sy, vEdgeRune)
	}
	put(x0, y0, cornerRune)
	put(x1, y0, cornerRune)
	put(x0, y1, cornerRune)
	put(x1, y1, cornerRune)
}

// Scroll moves the viewport by (dx, dy) grid cells, keeping it within the grid.
func (v *View) Scroll(s tcell.Screen, dx, dy int) {
	w, h := v.viewport(s)
	v.OffsetX = clamp(v.OffsetX+dx, 0, max(0, v.Grid.Width()-w))
	v.OffsetY = clamp(v.OffsetY+dy, 0, max(0, v.Grid.Height()-h))
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

// Run draws the view and handles keys until the user quits with 'q', Esc or
// Ctrl-C, or the screen is finalized. Arrow keys scroll by one cell,
// PgUp/PgDn by a screen, Home returns to the origin.
func (v *View) Run(s tcell.Screen) error {
	v.Draw(s)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.Scroll(s, 0, 0)
			s.Sync()
		case *tcell.EventKey:
			_, h := v.viewport(s)
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			case tcell.KeyLeft:
				v.Scroll(s, -1, 0)
			case tcell.KeyRight:
				v.Scroll(s, 1, 0)
			case tcell.KeyUp:
				v.Scroll(s, 0, -1)
			case tcell.KeyDown:
				v.Scroll(s, 0, 1)
			case tcell.KeyPgUp:
				v.Scroll(s, 0, -h)
			case tcell.KeyPgDn:
				v.Scroll(s, 0, h)
			case tcell.KeyHome:
				v.OffsetX, v.OffsetY = 0, 0
			}
		}
		v.Draw(s)
	}
}
