package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crawl/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games and levels",
	Long:  `Shows the games registered in the arcade and the levels they can be played on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print games
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")

	all, err := levelLibrary().Levels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(all) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	for i, l := range all {
		source := "built in"
		if l.FilePath != "" {
			source = l.FilePath
		}
		w := 0
		for _, row := range l.Layout {
			w = max(w, len([]rune(row)))
		}
		fmt.Printf("  %2d. %-12s  %-24s  %3dx%-3d  %s\n", i+1, l.ID, l.Title(), w, len(l.Layout), source)
	}
}
