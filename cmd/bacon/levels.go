package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bacon-invasion/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels of the pack",
	Long:  `Shows every level the game would load, with its size and door targets.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report level files that fail to load",
	Args:  cobra.NoArgs,
	RunE:  runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	defs, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	start, _ := levels.Start(defs)

	maxName := len("Name")
	for _, l := range defs {
		maxName = max(maxName, len(l.Name))
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxName, "Name", "Size", "Doors to")
	fmt.Printf("  %-*s  %-9s  %s\n", maxName, "----", "----", "--------")
	for _, l := range defs {
		marker := " "
		if l.Name == start.Name {
			marker = "*"
		}
		var targets []string
		for _, s := range l.Structures {
			if s.Target != "" {
				targets = append(targets, s.Target)
			}
		}
		fmt.Printf("%s %-*s  %-9s  %v\n", marker, maxName, l.Name,
			fmt.Sprintf("%gx%g", l.Width, l.Height), targets)
	}
	fmt.Println()
	fmt.Println("* start level")
	return nil
}

func runLevelsCheck(_ *cobra.Command, _ []string) error {
	loader := levelLoader()
	defs, failed, err := loader.Check()
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(failed))
	for p := range failed {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Printf("FAIL %s: %v\n", p, failed[p])
	}

	verr := levels.Validate(defs)
	if verr != nil {
		fmt.Printf("FAIL pack: %v\n", verr)
	}
	fmt.Printf("%d levels loaded from %s, %d files failed\n", len(defs), loader.Root, len(failed))

	if len(failed) > 0 || verr != nil {
		return errors.New("level pack has errors")
	}
	return nil
}
