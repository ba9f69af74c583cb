package solver

import (
	"fmt"

	"svw.info/dsudoku/internal/domain"
)

// eliminate removes every solved cell's digit from the candidate sets of
// all of its peers.
func (s *ConstraintSolver) eliminate(b *domain.Board, tr *domain.Trace) {
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		d, ok := b.Get(c).Single()
		if !ok {
			continue
		}
		for _, p := range s.topo.Peers(c) {
			b.Assign(p, b.Get(p).Without(d), tr)
		}
	}
}

// onlyChoice assigns a digit wherever a unit has exactly one cell still
// offering it.
func (s *ConstraintSolver) onlyChoice(b *domain.Board, tr *domain.Trace) {
	for _, u := range s.topo.Units() {
		for d := uint8(1); d <= 9; d++ {
			var place domain.Cell
			n := 0
			for _, c := range u {
				if b.Get(c).Has(d) {
					place = c
					n++
				}
			}
			if n == 1 {
				b.Assign(place, domain.CandidateOf(d), tr)
			}
		}
	}
}

// nakedTwins finds pairs of cells in a unit holding the same two-candidate
// set and removes those two digits from every other cell of the unit. All
// qualifying pairs are applied; if a third cell shares the pair the
// eliminations empty it, and the reduction loop reports the contradiction.
func (s *ConstraintSolver) nakedTwins(b *domain.Board, tr *domain.Trace) {
	for _, u := range s.topo.Units() {
		var twos []domain.Cell
		for _, c := range u {
			if b.Get(c).Count() == 2 {
				twos = append(twos, c)
			}
		}
		for i := 0; i < len(twos); i++ {
			pair := b.Get(twos[i])
			for j := i + 1; j < len(twos); j++ {
				if b.Get(twos[j]) != pair {
					continue
				}
				for _, c := range u {
					if c == twos[i] || c == twos[j] {
						continue
					}
					b.Assign(c, b.Get(c)&^pair, tr)
				}
			}
		}
	}
}

// Reduce runs elimination, naked twins, and only-choice in that order until
// the solved-cell count stops increasing. Any cell left without candidates
// fails the reduction with ErrContradiction. On success the board is at a
// propagation fixed point but not necessarily solved.
func (s *ConstraintSolver) Reduce(b *domain.Board, tr *domain.Trace) error {
	for {
		before := b.SolvedCount()
		s.eliminate(b, tr)
		s.nakedTwins(b, tr)
		s.onlyChoice(b, tr)
		if c, empty := b.FirstEmpty(); empty {
			return fmt.Errorf("%w: %s", ErrContradiction, c.Label())
		}
		if b.SolvedCount() == before {
			return nil
		}
	}
}
