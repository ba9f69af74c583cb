package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "svw.info/dsudoku/internal/adapters/http"
	"svw.info/dsudoku/internal/generator"
	"svw.info/dsudoku/internal/hint"
	"svw.info/dsudoku/internal/infrastructure/storage"
	"svw.info/dsudoku/internal/topology"
	"svw.info/dsudoku/internal/usecase"
	"svw.info/dsudoku/internal/validator"
)

var (
	serveAddr string
	dataDir   string
)

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&dataDir, "data", "./data", "solve record directory")
	commandServe.Flags().StringVar(&solverKind, "solver", "propagate", "solver to use: propagate|backtrack")
	rootCommand.AddCommand(commandServe)
}

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver as a JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// providersFor wires one topology's implementations. Both variants are
// built once here; requests only select between them.
func providersFor(diag bool) usecase.Providers {
	topo := topology.New(diag)
	s := newSolver(topo, solverKind)
	return usecase.Providers{
		Solver:    s,
		Generator: generator.New(s, diag),
		Validator: validator.New(topo),
		Hinter:    hint.New(topo),
	}
}

func runServe() error {
	uc := usecase.NewService(providersFor(false), providersFor(true), storage.NewFS(dataDir))
	h := httpadapter.New(uc)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Mount("/api", h.Routes())

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", zap.String("addr", serveAddr), zap.String("data", dataDir))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
			)
		})
	}
}
