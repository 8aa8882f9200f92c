// Package main is the entry point for the angler console game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "angler",
	Short: "A console fishing game",
	Long: `Angler is a terminal fishing game: cast a line across six zones,
land catches through a timing check, and bank the results into money,
levels, discoveries, and quests.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
}
