package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/internal/cli"
	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/internal/metrics"
	"github.com/katalvlaran/mazewalk/internal/render"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search a maze from the entrance to the exit",
	Long: `Builds a maze, runs depth-first or breadth-first search one node per tick and
prints the path from entrance to exit. Ctrl+C stops the search at the next tick.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := cli.Session{
			Config: cfg,
			Seed:   cli.ResolveSeed(cfg.Seed),
			Out:    cmd.OutOrStdout(),
			Logger: logger,
		}

		if cfg.MetricsAddr != "" {
			s.Recorder = metrics.NewRecorder()
			srvCtx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				if err := metrics.Serve(srvCtx, cfg.MetricsAddr, s.Recorder, logger); err != nil {
					logger.Error("metrics server failed", "error", err)
				}
			}()
		}

		if animate(cfg) {
			layout, err := cfg.Layout()
			if err != nil {
				return err
			}
			_, columns, err := layout.Dimensions()
			if err != nil {
				return err
			}
			mode := render.DetectMode(os.Stdout)
			if cfg.Animate == config.AnimateAlways || render.Fits(os.Stdout, mode, columns) {
				s.Renderer = render.New(os.Stdout, mode)
			} else {
				logger.Info("maze wider than terminal, animation off", "columns", columns)
			}
		}

		if _, err := s.Solve(ctx); err != nil {
			return err
		}
		if s.Recorder != nil && ctx.Err() == nil {
			logger.Info("search finished, metrics still served; press Ctrl+C to exit", "addr", cfg.MetricsAddr)
			<-ctx.Done()
		}
		return nil
	},
}

func animate(cfg config.Config) bool {
	switch cfg.Animate {
	case config.AnimateAlways:
		return true
	case config.AnimateNever:
		return false
	default:
		return render.IsTerminal(os.Stdout)
	}
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringP("algorithm", "a", "", "Search algorithm: dfs or bfs")
	solveCmd.Flags().IntP("tick", "t", 0, "Tick interval in milliseconds (1-1000)")
	solveCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112")

	// Make 'solve' the default if no command is provided.
	rootCmd.RunE = solveCmd.RunE
}
