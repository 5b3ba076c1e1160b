package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "mazewalk",
	Short: "mazewalk animates depth-first and breadth-first search through grid mazes",
	Long: `mazewalk builds a rectangular grid maze, optionally scatters random walls,
and walks it from the top-left entrance to the bottom-right exit one node per tick.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "mazewalk.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")

	addMazeFlags(rootCmd)
}

// addMazeFlags registers the flags shared by every command that builds a maze.
func addMazeFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.Int("cells", 0, "Maze size from the size menu (see 'mazewalk sizes')")
	f.Int64("seed", 0, "Random seed; 0 picks a fresh one")
	f.Float64("wall-ratio", 0, "Probability that a cell becomes a wall")
	f.Bool("random-walls", true, "Scatter random walls before solving")
	f.String("animate", "", "Frame drawing: auto, always or never")
}

// loadConfig reads the config file and applies every flag the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("cells") {
		cfg.Cells, _ = flags.GetInt("cells")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("wall-ratio") {
		cfg.WallRatio, _ = flags.GetFloat64("wall-ratio")
	}
	if flags.Changed("random-walls") {
		cfg.RandomWalls, _ = flags.GetBool("random-walls")
	}
	if flags.Changed("animate") {
		cfg.Animate, _ = flags.GetString("animate")
	}
	if flags.Lookup("algorithm") != nil && flags.Changed("algorithm") {
		cfg.Algorithm, _ = flags.GetString("algorithm")
	}
	if flags.Lookup("tick") != nil && flags.Changed("tick") {
		cfg.TickInterval, _ = flags.GetInt("tick")
	}
	if flags.Lookup("metrics-addr") != nil && flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *slog.Logger {
	level, _ := logging.ParseLevel(cfg.LogLevel)
	return logging.New(level)
}
