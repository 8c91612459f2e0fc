package grid

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Canonical symbols written by Grid.String.
const (
	LandSymbol  = '#'
	WaterSymbol = '.'
)

// Parse builds a Grid from a text map, one row per line.
// Land is '#', '1' or 'X'; water is '.', '0' or '~'.
// Surrounding whitespace on each line and blank lines are ignored, so
// indented raw-string literals work as input. An input with no rows yields
// a 0×0 grid.
// Complexity: O(len(s)).
func Parse(s string) (*Grid, error) {
	var rows [][]bool
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), len(s)+1)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		row := make([]bool, 0, len(text))
		// columns are runes counted from the start of the untrimmed line
		col := utf8.RuneCountInString(raw[:strings.Index(raw, text)])
		for _, r := range text {
			col++
			switch r {
			case LandSymbol, '1', 'X':
				row = append(row, true)
			case WaterSymbol, '0', '~':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("Parse: line %d column %d %q: %w", line, col, r, ErrUnknownSymbol)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return FromRows(rows)
}

// ReadFile parses the text map stored at path.
func ReadFile(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
