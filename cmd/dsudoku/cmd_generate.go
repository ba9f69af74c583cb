package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/generator"
	"svw.info/dsudoku/internal/solver"
	"svw.info/dsudoku/internal/topology"
)

var (
	generateSeed       int64
	generateDifficulty string
)

func init() {
	commandGenerate.Flags().Int64Var(&generateSeed, "seed", 0, "generation seed (0 = time-based)")
	commandGenerate.Flags().StringVar(&generateDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	rootCommand.AddCommand(commandGenerate)
}

var commandGenerate = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle (not checked for solution uniqueness)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func parseDifficulty(s string) domain.Difficulty {
	switch s {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func runGenerate() error {
	seed := generateSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	topo := topology.New(diagonal)
	g := generator.New(solver.NewConstraintSolver(topo), diagonal)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, st, err := g.Generate(ctx, seed, parseDifficulty(generateDifficulty))
	if err != nil {
		return err
	}
	logger.Info("generated",
		zap.Int64("seed", seed),
		zap.String("difficulty", generateDifficulty),
		zap.Bool("diagonal", diagonal),
		zap.Duration("dur", st.Duration),
	)
	fmt.Println(p.Grid)
	b, err := domain.ParseGrid(p.Grid)
	if err != nil {
		return err
	}
	fmt.Print(b.Display())
	return nil
}
