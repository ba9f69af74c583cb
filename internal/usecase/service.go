package usecase

import (
	"context"
	"errors"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/ports"
)

// Providers bundles the implementations backing one topology (standard or
// diagonal). Both variants are built once at startup; the diagonal flag on
// a request only selects between them, it never rebuilds a topology.
type Providers struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
}

type Service struct {
	Standard Providers
	Diagonal Providers
	Storage  ports.Storage
}

func NewService(standard, diagonal Providers, st ports.Storage) *Service {
	return &Service{Standard: standard, Diagonal: diagonal, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) providers(diagonal bool) *Providers {
	if diagonal {
		return &u.Diagonal
	}
	return &u.Standard
}

func (u *Service) Solve(ctx context.Context, b *domain.Board, diagonal bool) (*domain.Board, *domain.Trace, ports.Stats, error) {
	p := u.providers(diagonal)
	if p.Solver == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return p.Solver.Solve(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty, diagonal bool) (*domain.Puzzle, ports.Stats, error) {
	p := u.providers(diagonal)
	if p.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return p.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board, diagonal bool) (bool, []domain.Cell, error) {
	p := u.providers(diagonal)
	if p.Validator == nil {
		return false, nil, errNotConfigured
	}
	return p.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.Technique, diagonal bool) (domain.Hint, bool, error) {
	p := u.providers(diagonal)
	if p.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return p.Hinter.Hint(ctx, b, max)
}

// Persistence
func (u *Service) Save(ctx context.Context, rec *domain.SolveRecord) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, rec)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.SolveRecord, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
