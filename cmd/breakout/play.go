package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
	"github.com/vovakirdan/tui-breakout/internal/loop"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagBackend  string
	flagFrames   int
	flagPNG      string
	flagRealtime bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a session on the selected backend.

Controls:
  Esc        - Quit
  Ctrl+C     - Close (terminal)

Backends:
  tui       - Draw in the terminal (default)
  headless  - Render off-screen; stops after --frames frames
  window    - Native SDL2 window (binary built with -tags sdl2)

Examples:
  breakout play
  breakout play --backend headless --frames 600 --png frame.png
  breakout play --backend headless --realtime --frames 100
  breakout play --config ./my-breakout.yaml`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags is shared by play and the root command, which plays by default.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "tui", "Backend to run on (see 'breakout backends')")
	cmd.Flags().IntVar(&flagFrames, "frames", 300, "Headless: quit after this many frames (0 = run until killed)")
	cmd.Flags().StringVar(&flagPNG, "png", "", "Headless: write the last frame to this PNG file")
	cmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Headless: pace ticks with the wall clock")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q (run 'breakout backends' to see available backends)", flagBackend)
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	backend, err := registry.Create(flagBackend, registry.Options{
		Frames:   flagFrames,
		PNGPath:  flagPNG,
		Realtime: flagRealtime,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	record, runErr := playSession(backend, cfg, logger)
	if record.Ticks == 0 {
		// init failed; nothing ran
		return runErr
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		return runErr
	}
	defer store.Close()

	if _, err := store.SaveRun(record); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
	}
	return runErr
}

// playSession initializes the backend, runs the game loop until the player
// quits and shuts the backend down. The record is zero when Init failed.
func playSession(backend registry.Backend, cfg config.BreakoutConfig, logger *logging.Logger) (storage.RunRecord, error) {
	if err := backend.Init(core.WindowWidth, core.WindowHeight, cfg.Window.Title); err != nil {
		logger.Log(logging.KindError, "backend init failed", "backend", backend.Name(), "err", err)
		return storage.RunRecord{}, fmt.Errorf("init %s backend: %w", backend.Name(), err)
	}

	game, err := breakout.New(cfg, logger)
	if err != nil {
		//nolint:errcheck // the config error is the one worth reporting
		backend.Shutdown()
		return storage.RunRecord{}, err
	}

	interval := int64(cfg.Loop.TickIntervalMs)
	logger.Info("session started", "backend", backend.Name(), "tick_ms", interval)
	stats := loop.Run(backend, game, interval, logger)

	snap := game.Snapshot()
	shutdownErr := backend.Shutdown()
	if shutdownErr != nil {
		logger.Log(logging.KindError, "backend shutdown failed", "err", shutdownErr)
	}

	logger.Info("session finished",
		"ticks", stats.Ticks,
		"overruns", stats.Overruns,
		"destroyed", game.Destroyed(),
		"elapsed_ms", stats.ElapsedMs,
		"errors", logger.ErrorCount(),
		"state", game.String(),
	)

	record := storage.RunRecord{
		Backend:         backend.Name(),
		Ticks:           stats.Ticks,
		Overruns:        stats.Overruns,
		BricksDestroyed: game.Destroyed(),
		BricksTotal:     game.Grid().Total(),
		ErrorCount:      logger.ErrorCount(),
		DurationMs:      stats.ElapsedMs,
		LagMs:           stats.LagMs,
		SnapshotHash:    snap.Hash(),
	}
	return record, shutdownErr
}

// openLogger opens the log destination named by --log-file.
func openLogger() (*logging.Logger, io.Closer, error) {
	var (
		logger *logging.Logger
		closer io.Closer = io.NopCloser(nil)
		err    error
	)
	switch flagLogFile {
	case "":
		logger = logging.Discard()
	case "-":
		logger = logging.New(os.Stderr, "breakout")
	default:
		logger, closer, err = logging.OpenFile(flagLogFile, "breakout")
		if err != nil {
			return nil, nil, err
		}
	}

	if err := logger.SetLevelString(flagLogLevel); err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}
