// Package hint surfaces the next deduction the propagation techniques
// would make, without mutating the board.
package hint

import (
	"context"
	"fmt"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/topology"
)

// Deduction is a Hinter over the candidate model: it reports the first
// cell the cheapest applicable technique would act on.
type Deduction struct {
	topo *topology.Topology
}

func New(topo *topology.Topology) *Deduction { return &Deduction{topo: topo} }

func digitInts(c domain.Candidates) []int {
	out := make([]int, 0, c.Count())
	for _, d := range c.Digits() {
		out = append(out, int(d))
	}
	return out
}

// Hint returns the next deduction using techniques up to max.
func (h *Deduction) Hint(ctx context.Context, b *domain.Board, max domain.Technique) (domain.Hint, bool, error) {
	if hint, ok := h.eliminationSingle(b); ok {
		return hint, true, nil
	}
	if max >= domain.OnlyChoice {
		if hint, ok := h.onlyChoice(b); ok {
			return hint, true, nil
		}
	}
	if max >= domain.NakedTwins {
		if hint, ok := h.nakedTwins(b); ok {
			return hint, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// eliminationSingle finds a cell left with one candidate once its solved
// peers' digits are struck out.
func (h *Deduction) eliminationSingle(b *domain.Board) (domain.Hint, bool) {
	for c := domain.Cell(0); c < domain.NumCells; c++ {
		if b.Get(c).Count() == 1 {
			continue
		}
		rem := b.Get(c)
		for _, p := range h.topo.Peers(c) {
			if d, ok := b.Get(p).Single(); ok {
				rem = rem.Without(d)
			}
		}
		if d, ok := rem.Single(); ok {
			return domain.Hint{
				Message:   fmt.Sprintf("only %d fits in %s", d, c.Label()),
				Cells:     []string{c.Label()},
				Digits:    []int{int(d)},
				Technique: domain.Elimination,
			}, true
		}
	}
	return domain.Hint{}, false
}

// onlyChoice finds a unit with a single remaining place for some digit.
func (h *Deduction) onlyChoice(b *domain.Board) (domain.Hint, bool) {
	for _, u := range h.topo.Units() {
		for d := uint8(1); d <= 9; d++ {
			var place domain.Cell
			n := 0
			for _, c := range u {
				if b.Get(c).Has(d) {
					place = c
					n++
				}
			}
			if n == 1 && b.Get(place).Count() > 1 {
				return domain.Hint{
					Message:   fmt.Sprintf("%s is the only place for %d in its unit", place.Label(), d),
					Cells:     []string{place.Label()},
					Digits:    []int{int(d)},
					Technique: domain.OnlyChoice,
				}, true
			}
		}
	}
	return domain.Hint{}, false
}

// nakedTwins finds a twin pair whose digits still appear elsewhere in the
// unit, so pointing it out actually prunes something.
func (h *Deduction) nakedTwins(b *domain.Board) (domain.Hint, bool) {
	for _, u := range h.topo.Units() {
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
					if b.Get(c)&pair != 0 {
						return domain.Hint{
							Message: fmt.Sprintf("twins %s/%s lock %s in their unit",
								twos[i].Label(), twos[j].Label(), pair),
							Cells:     []string{twos[i].Label(), twos[j].Label()},
							Digits:    digitInts(pair),
							Technique: domain.NakedTwins,
						}, true
					}
				}
			}
		}
	}
	return domain.Hint{}, false
}
