package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the brick grid",
	Long: `Print the rectangle of every brick in row-major order, as the game
builds it from the current config.`,
	RunE: runLayout,
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	spec := breakout.DefaultGridSpec()
	spec.Wrap = cfg.Layout.Wrap
	printLayout(os.Stdout, breakout.NewGrid(spec, cfg.BrickColor()))
	return nil
}

func printLayout(w io.Writer, grid *breakout.Grid) {
	fmt.Fprintf(w, "  %-3s  %-3s  %5s  %5s  %5s  %5s\n", "Row", "Col", "X", "Y", "W", "H")
	fmt.Fprintf(w, "  %-3s  %-3s  %5s  %5s  %5s  %5s\n", "---", "---", "-", "-", "-", "-")
	for row := range grid.Rows {
		for col := range grid.Cols {
			r := grid.Bricks[row][col].Rect
			fmt.Fprintf(w, "  %-3d  %-3d  %5d  %5d  %5d  %5d\n", row, col, r.X, r.Y, r.W, r.H)
		}
	}
	fmt.Fprintf(w, "\n%d bricks\n", grid.Total())
}
