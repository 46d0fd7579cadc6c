package grid

import (
	"fmt"
	"strings"
)

// Parse builds a rune grid, one cell per character. Lines are trimmed and
// blank lines skipped; the remaining rows must all have the same length.
func Parse(lines []string) (*Grid[rune], error) {
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}
	return New(rows)
}

// ParseString splits s on newlines and calls Parse.
func ParseString(s string) (*Grid[rune], error) {
	return Parse(strings.Split(s, "\n"))
}

// ParseDigits builds an int grid from rows of decimal digits. A '.' cell is
// stored as Impassable; any other non-digit is ErrMalformedInput.
func ParseDigits(lines []string) (*Grid[int], error) {
	runes, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	h, w := runes.Dimensions()
	out, _ := Filled(h, w, Impassable)
	for c, r := range runes.All() {
		switch {
		case r >= '0' && r <= '9':
			out.cells[out.index(c)] = int(r - '0')
		case r == '.':
		default:
			return nil, fmt.Errorf("%w: %q at %v is not a digit", ErrMalformedInput, r, c)
		}
	}
	return out, nil
}

// Render is the inverse of Parse: rows joined by newlines, no trailing newline.
func Render(g *Grid[rune]) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.height)
	for r := 0; r < g.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(g.cells[r*g.width : (r+1)*g.width]))
	}
	return sb.String()
}
