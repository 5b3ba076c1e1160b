package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazewalk/maze"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List the supported maze sizes",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%6s  %9s  %s\n", "CELLS", "CELL SIZE", "GRID")
		for _, s := range maze.Sizes() {
			l := maze.DefaultLayout()
			l.CellSize = s.CellSize
			rows, cols, _ := l.Dimensions()
			fmt.Fprintf(out, "%6d  %9d  %dx%d\n", s.Cells, s.CellSize, rows, cols)
		}
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}
