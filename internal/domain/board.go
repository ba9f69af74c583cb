package domain

// NumCells is the number of grid positions.
const NumCells = 81

// Cell indexes one of the 81 grid positions in row-major order.
type Cell uint8

// CellAt returns the cell at (row, col), both 0-based.
func CellAt(row, col int) Cell { return Cell(row*9 + col) }

func (c Cell) Row() int { return int(c) / 9 }
func (c Cell) Col() int { return int(c) % 9 }

// Label renders the cell as its two-character name, e.g. "A1" for (0,0).
func (c Cell) Label() string {
	return string([]byte{byte('A' + c.Row()), byte('1' + c.Col())})
}

// Board holds the candidate set of every cell. It is mutated only through
// Assign; search branches work on independent Clones.
type Board struct {
	cells [NumCells]Candidates
}

// NewBoard returns a board with every cell holding all nine candidates.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = AllCandidates
	}
	return b
}

// Get returns the candidate set of c.
func (b *Board) Get(c Cell) Candidates { return b.cells[c] }

// Assign overwrites the candidate set of c. Assigning the current value is
// a no-op and is not recorded. When the new set is a single digit and tr is
// non-nil, a full snapshot of the board is appended to the trace.
func (b *Board) Assign(c Cell, v Candidates, tr *Trace) {
	if b.cells[c] == v {
		return
	}
	b.cells[c] = v
	if v.Count() == 1 {
		tr.record(b)
	}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Solved reports whether every cell holds exactly one candidate.
func (b *Board) Solved() bool {
	for _, v := range b.cells {
		if v.Count() != 1 {
			return false
		}
	}
	return true
}

// SolvedCount counts cells holding exactly one candidate.
func (b *Board) SolvedCount() int {
	n := 0
	for _, v := range b.cells {
		if v.Count() == 1 {
			n++
		}
	}
	return n
}

// FirstEmpty returns a cell whose candidate set is empty, if any.
func (b *Board) FirstEmpty() (Cell, bool) {
	for i, v := range b.cells {
		if v == 0 {
			return Cell(i), true
		}
	}
	return 0, false
}
