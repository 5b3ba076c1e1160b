package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/internal/cli"
	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random maze and whether it can be solved",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		mode := render.Plain
		if cfg.Animate != config.AnimateNever {
			mode = render.DetectMode(os.Stdout)
		}
		out := cmd.OutOrStdout()
		return cli.Generate(out, render.New(out, mode), cfg, cli.ResolveSeed(cfg.Seed))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
