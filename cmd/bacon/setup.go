package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bacon-invasion/internal/config"
	"github.com/vovakirdan/bacon-invasion/internal/levels"
	"github.com/vovakirdan/bacon-invasion/internal/platform/tui"
)

// expandHome turns a leading ~ into the home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// openLog opens the log file. The terminal belongs to the game while it
// runs, so nothing is logged to stderr.
func openLog(prefix string) (*log.Logger, func()) {
	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// levelLoader picks the level source from the --levels flag.
func levelLoader() *levels.Loader {
	if flagLevels != "" {
		return levels.NewLoader(flagLevels)
	}
	return levels.Embedded()
}

// gameOptions loads config and levels into the options a run starts from.
func gameOptions() (tui.GameOptions, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return tui.GameOptions{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.GameOptions{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	defs, err := levelLoader().LoadAll()
	if err != nil {
		return tui.GameOptions{}, fmt.Errorf("cannot load levels: %w", err)
	}
	if err := levels.Validate(defs); err != nil {
		return tui.GameOptions{}, err
	}

	return tui.GameOptions{
		Config:     cfg,
		Levels:     defs,
		Difficulty: preset,
		Seed:       flagSeed,
	}, nil
}
