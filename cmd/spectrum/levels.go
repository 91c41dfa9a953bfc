package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/full-spectrum/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List available levels",
	Long: `List all level files in a directory (default ./levels), plus the built-in
classic level.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	root := "./levels"
	if len(args) == 1 {
		root = args[0]
	}

	fmt.Printf("%-16s %-24s %s\n", "ID", "NAME", "SIZE")

	builtin := levels.Classic()
	fmt.Printf("%-16s %-24s %dx%d (built-in)\n", builtin.ID, builtin.Name, builtin.Width, builtin.Height)

	loaded, err := levels.NewLoader(root).LoadAll()
	if err != nil {
		logger.Error("could not scan level directory", "dir", root, "error", err)
		os.Exit(1)
	}
	for _, lvl := range loaded {
		fmt.Printf("%-16s %-24s %dx%d\n", lvl.ID, lvl.Name, lvl.Width, lvl.Height)
	}

	if len(loaded) == 0 {
		logger.Info("no level files found", "dir", root)
	}
}
