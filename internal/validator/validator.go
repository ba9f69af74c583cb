package validator

import (
	"context"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/topology"
)

// UnitValidator scans every unit of the topology for duplicate solved
// digits. On a fully solved board this is exactly the check that each unit
// is a permutation of 1-9.
type UnitValidator struct {
	topo *topology.Topology
}

func New(topo *topology.Topology) *UnitValidator { return &UnitValidator{topo: topo} }

func (v *UnitValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	for _, u := range v.topo.Units() {
		seen := 0
		for _, c := range u {
			d, ok := b.Get(c).Single()
			if !ok {
				continue
			}
			bit := 1 << d
			if seen&bit != 0 {
				conf = append(conf, c)
			}
			seen |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// ValidateSolved additionally requires every cell to be solved.
func (v *UnitValidator) ValidateSolved(ctx context.Context, b *domain.Board) (bool, []domain.Cell, error) {
	if !b.Solved() {
		unsolved := make([]domain.Cell, 0, 8)
		for c := domain.Cell(0); c < domain.NumCells; c++ {
			if b.Get(c).Count() != 1 {
				unsolved = append(unsolved, c)
			}
		}
		return false, unsolved, nil
	}
	return v.Validate(ctx, b)
}
