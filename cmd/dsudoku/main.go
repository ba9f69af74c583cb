package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger   *zap.Logger
	logLevel string
	diagonal bool
)

var rootCommand = &cobra.Command{
	Use:   "dsudoku",
	Short: "Sudoku solver combining constraint propagation with backtracking search",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = cfg.Build()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCommand.PersistentFlags().BoolVar(&diagonal, "diagonal", false, "constrain both main diagonals as units")
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
