package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bacon-invasion/internal/world"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List enemy and item kinds",
	Long:  `Shows the enemy and item ids level files can spawn.`,
	Args:  cobra.NoArgs,
	Run:   runKinds,
}

func runKinds(_ *cobra.Command, _ []string) {
	fmt.Println("Enemies:")
	for _, k := range world.EnemyKinds() {
		fmt.Printf("  %-16s  %s\n", k.ID, k.Title)
	}
	fmt.Println()
	fmt.Println("Items:")
	for _, k := range world.ItemKinds() {
		fmt.Printf("  %-16s  %s\n", k.ID, k.Title)
	}
}
