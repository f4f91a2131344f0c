package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bacon-invasion/internal/platform/tui"
	"github.com/vovakirdan/bacon-invasion/internal/storage"
)

var (
	flagRunsPlain  bool
	flagRunsPlayer string
	flagRunsLimit  int
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse finished runs",
	Long: `Shows the stored runs in an interactive table.

Examples:
  bacon runs
  bacon runs --plain
  bacon runs --plain --player alice
  bacon runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print the best runs instead of opening the table")
	runsCmd.Flags().StringVar(&flagRunsPlayer, "player", "", "Only list runs of one SSH user (with --plain)")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print (with --plain)")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every stored run")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if !flagRunsPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRunTable(store, flagRunsPlayer, width, height)
	}

	var runs []storage.Run
	if flagRunsPlayer != "" {
		runs, err = store.PlayerRuns(flagRunsPlayer, flagRunsLimit)
	} else {
		runs, err = store.TopRuns(flagRunsLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bacon play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %-5s  %-8s  %-5s  %s\n", "Rank", "Player", "Level", "Kills", "Time", "End", "Date")
	fmt.Printf("  %-4s  %-10s  %-16s  %-5s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----", "---", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		end := "exit"
		if r.Died {
			end = "died"
		}
		fmt.Printf("  %-4d  %-10s  %-16s  %-5d  %-8s  %-5s  %s\n",
			i+1, player, r.Level, r.Kills, r.Duration.Round(time.Second), end, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Deaths: %d  Best: %d kills  Total: %d kills\n",
			st.Runs, st.Deaths, st.BestKills, st.TotalKills)
	}
	return nil
}
