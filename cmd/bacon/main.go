// bacon is a side-scrolling survival game played in the terminal.
//
// Usage:
//
//	bacon play               - Start a run
//	bacon levels             - List the levels of the pack
//	bacon levels check       - Report level files that fail to load
//	bacon kinds              - List enemy and item kinds
//	bacon runs               - Browse finished runs
//	bacon serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.bacon/runs.db)
//	--config <path>       - Load a custom game.yaml
//	--levels <dir>        - Load levels from a directory instead of the built-in pack
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bacon",
	Short: "Bacon Invasion - survive the meat in your terminal",
	Long: `Bacon Invasion is a side-scrolling survival game drawn in the terminal.
Walk between rooms, open doors, pick up guns and keep the bacon away.

Available commands:
  play     - Start a run
  levels   - List or check the level pack
  kinds    - Show the enemy and item kinds
  runs     - Browse finished runs
  serve    - Start SSH server for remote play

Examples:
  bacon play
  bacon play --difficulty hard --seed 42
  bacon levels check --levels ./my-levels
  bacon runs --plain
  bacon serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bacon/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of level files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.bacon/bacon.log", "Path to log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
