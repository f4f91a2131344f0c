package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bacon-invasion/internal/audio"
	"github.com/vovakirdan/bacon-invasion/internal/platform/tui"
	"github.com/vovakirdan/bacon-invasion/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run in the first level of the pack.

Controls:
  A/D, Left/Right  - Walk
  S/Down           - Stop
  E/W/Up           - Open doors, pick things up
  Space/F          - Fire the selected gun
  Tab/[ ]          - Cycle items
  U                - Use a medkit
  P                - Pause
  R                - New run (after death)
  B                - Browse runs (after death)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Weaker enemies, more health
  normal - Config values as written
  hard   - Tougher enemies that hit harder

Examples:
  bacon play
  bacon play --difficulty easy
  bacon play --seed 42 --mute
  bacon play --config ./my-game.yaml --levels ./my-levels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	opts, err := gameOptions()
	if err != nil {
		return err
	}

	logger, closeLog := openLog("bacon")
	defer closeLog()
	opts.Logger = logger

	// Get terminal size for the first frame
	opts.ScreenW, opts.ScreenH = 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.ScreenW, opts.ScreenH = w, h
	}

	if flagMute {
		opts.Config.Audio.Enabled = false
	}
	sink := audio.Open(opts.Config.Audio, logger)
	if sp, ok := sink.(*audio.Speaker); ok {
		defer sp.Close()
	}
	opts.Sink = sink

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("run starting", "levels", len(opts.Levels), "difficulty", opts.Difficulty, "seed", opts.Seed)
	if err := tui.Run(opts, store); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
