package ports

import (
	"context"
	"time"

	"svw.info/dsudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver reduces a board to a full solution or reports that none exists.
// The returned trace logs every definitive assignment for visualization.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, *domain.Trace, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator checks that no unit holds a duplicate solved digit.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.Cell, err error)
}

// Hinter returns the next logical deduction up to a maximum technique.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.Technique) (domain.Hint, bool, error)
}

// Storage persists and retrieves solve records as JSON.
type Storage interface {
	Save(ctx context.Context, rec *domain.SolveRecord) error
	Load(ctx context.Context, id string) (*domain.SolveRecord, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
