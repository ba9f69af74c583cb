package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/dsudoku/internal/domain"
	"svw.info/dsudoku/internal/infrastructure/storage"
	"svw.info/dsudoku/internal/ports"
	"svw.info/dsudoku/internal/solver"
	"svw.info/dsudoku/internal/topology"
)

var (
	solverKind   string
	saveTraceDir string
	solveTimeout time.Duration
)

func init() {
	commandSolve.Flags().StringVar(&solverKind, "solver", "propagate", "solver to use: propagate|backtrack")
	commandSolve.Flags().StringVar(&saveTraceDir, "save-trace", "", "directory to save the solve record with its assignment trace")
	commandSolve.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "solve deadline")
	rootCommand.AddCommand(commandSolve)
}

var commandSolve = &cobra.Command{
	Use:   "solve [grid]",
	Short: "Solve an 81-character grid ('.' for empty cells); reads stdin when omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grid, err := readGrid(args)
		if err != nil {
			return err
		}
		return runSolve(grid)
	},
}

func readGrid(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return "", fmt.Errorf("no grid on stdin: %w", sc.Err())
	}
	return strings.TrimSpace(sc.Text()), nil
}

func newSolver(topo *topology.Topology, kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(topo)
	default:
		return solver.NewConstraintSolver(topo)
	}
}

func runSolve(grid string) error {
	b, err := domain.ParseGrid(grid)
	if err != nil {
		return err
	}
	topo := topology.New(diagonal)
	s := newSolver(topo, solverKind)

	ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
	defer cancel()

	out, tr, st, err := s.Solve(ctx, b)
	if err != nil {
		return err
	}
	logger.Info("solved",
		zap.Bool("diagonal", diagonal),
		zap.Int("nodes", st.Nodes),
		zap.Int("traceLen", tr.Len()),
		zap.Duration("dur", st.Duration),
	)
	fmt.Print(out.Display())

	if saveTraceDir != "" {
		rec := &domain.SolveRecord{
			Grid:       grid,
			Diagonal:   diagonal,
			Solution:   out.Grid(),
			Nodes:      st.Nodes,
			DurationMs: st.Duration.Milliseconds(),
			Trace:      tr.Frames(),
			CreatedAt:  time.Now().UnixNano(),
		}
		if err := storage.NewFS(saveTraceDir).Save(ctx, rec); err != nil {
			return fmt.Errorf("saving trace: %w", err)
		}
		logger.Info("trace saved", zap.String("id", rec.ID), zap.String("dir", saveTraceDir))
	}
	return nil
}
