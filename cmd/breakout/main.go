// breakout is a minimal brick-breaker: one ball bounces around an 800x500
// field and destroys the bricks it touches.
//
// Usage:
//
//	breakout                  - Play in the terminal
//	breakout play             - Same, with backend options
//	breakout backends         - List available backends
//	breakout layout           - Print the brick grid
//	breakout runs             - Show the run journal
//
// Global flags:
//
//	--config <path>     - Game config YAML
//	--db <path>         - Run journal database (default: ~/.arcade/breakout.db)
//	--log-file <path>   - Log destination, "-" for stderr (default: ~/.arcade/breakout.log)
//	--log-level <name>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-breakout/internal/platform/raster"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/tui"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball through a wall of bricks",
	Long: `Breakout runs a single ball against an 8x14 grid of bricks at a fixed
tick rate. Press Esc or close the window to quit.

Available commands:
  play      - Play (default when no command is given)
  backends  - Show all available backends
  layout    - Print the brick rectangles
  runs      - View the run journal

Examples:
  breakout
  breakout play --backend headless --frames 300 --png last.png
  breakout play --backend window
  breakout runs --limit 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/breakout.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/breakout.log", `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(runsCmd)
}
