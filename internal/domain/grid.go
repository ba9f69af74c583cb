package domain

import (
	"fmt"
	"strings"
)

// ParseGrid converts an 81-character grid string read in row-major order
// into a board: '.' keeps all nine candidates, a digit becomes that digit
// alone. Any other length or character is a format error.
func ParseGrid(grid string) (*Board, error) {
	if len(grid) != NumCells {
		return nil, fmt.Errorf("grid must be %d characters, got %d", NumCells, len(grid))
	}
	b := NewBoard()
	for i := 0; i < NumCells; i++ {
		switch ch := grid[i]; {
		case ch == '.':
			// all candidates already set
		case ch >= '1' && ch <= '9':
			b.cells[i] = CandidateOf(ch - '0')
		default:
			return nil, fmt.Errorf("invalid grid character %q at position %d", ch, i)
		}
	}
	return b, nil
}

// Grid renders the board back to the 81-character form, '.' for any cell
// not yet reduced to a single digit.
func (b *Board) Grid() string {
	out := make([]byte, NumCells)
	for i, v := range b.cells {
		if d, ok := v.Single(); ok {
			out[i] = '0' + d
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// Display pretty-prints the board as a 2-D grid with box separators,
// showing full candidate sets for unsolved cells.
func (b *Board) Display() string {
	width := 2
	for _, v := range b.cells {
		if n := v.Count() + 1; n > width {
			width = n
		}
	}
	bar := strings.Repeat("-", width*3)
	line := bar + "+" + bar + "+" + bar
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s := b.cells[CellAt(r, c)].String()
			pad := width - len(s)
			left := pad / 2
			sb.WriteString(strings.Repeat(" ", left))
			sb.WriteString(s)
			sb.WriteString(strings.Repeat(" ", pad-left))
			if c == 2 || c == 5 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
