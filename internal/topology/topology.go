// Package topology precomputes the static constraint structure of the grid:
// the unit list (rows, columns, boxes, optional diagonals) and the peer set
// of every cell. Built once at startup and shared read-only by the solver,
// validator, and hinter.
package topology

import "svw.info/dsudoku/internal/domain"

// Unit is a group of nine cells that must jointly contain each digit 1-9
// exactly once.
type Unit [9]domain.Cell

// Topology holds the unit list and per-cell peers. Immutable after New.
type Topology struct {
	units    []Unit
	cellUnit [domain.NumCells][]int // indices into units, per cell
	peers    [domain.NumCells][]domain.Cell
	diagonal bool
}

// New builds the 27 standard units, plus the two diagonals when diagonal
// is set, and derives the peer map.
func New(diagonal bool) *Topology {
	t := &Topology{diagonal: diagonal}

	for r := 0; r < 9; r++ {
		var u Unit
		for c := 0; c < 9; c++ {
			u[c] = domain.CellAt(r, c)
		}
		t.units = append(t.units, u)
	}
	for c := 0; c < 9; c++ {
		var u Unit
		for r := 0; r < 9; r++ {
			u[r] = domain.CellAt(r, c)
		}
		t.units = append(t.units, u)
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var u Unit
			i := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					u[i] = domain.CellAt(br*3+dr, bc*3+dc)
					i++
				}
			}
			t.units = append(t.units, u)
		}
	}
	if diagonal {
		var main, anti Unit
		for i := 0; i < 9; i++ {
			main[i] = domain.CellAt(i, i)
			anti[i] = domain.CellAt(i, 8-i)
		}
		t.units = append(t.units, main, anti)
	}

	for ui, u := range t.units {
		for _, c := range u {
			t.cellUnit[c] = append(t.cellUnit[c], ui)
		}
	}
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		var seen [domain.NumCells]bool
		for _, ui := range t.cellUnit[c] {
			for _, p := range t.units[ui] {
				if p != c && !seen[p] {
					seen[p] = true
					t.peers[c] = append(t.peers[c], p)
				}
			}
		}
	}
	return t
}

// Units returns the active unit list.
func (t *Topology) Units() []Unit { return t.units }

// UnitsOf returns the units containing c.
func (t *Topology) UnitsOf(c domain.Cell) []Unit {
	out := make([]Unit, 0, len(t.cellUnit[c]))
	for _, ui := range t.cellUnit[c] {
		out = append(out, t.units[ui])
	}
	return out
}

// Peers returns every cell sharing a unit with c, excluding c itself.
func (t *Topology) Peers(c domain.Cell) []domain.Cell { return t.peers[c] }

// Diagonal reports whether the two diagonal units are active.
func (t *Topology) Diagonal() bool { return t.diagonal }
