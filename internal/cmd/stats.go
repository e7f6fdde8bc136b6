package cmd

import (
	"fmt"
	"log"

	"github.com/seampkg/seam/fsys"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates and returns the stats subcommand for the seam CLI.
// It prints summary statistics about a loaded status area.
func NewStatsCmd() *cobra.Command {
	var (
		adminDir string
		rootDir  string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print database statistics for a status area",
		Long: `Load a status area and print statistics about the resulting database.

This reports the number of known paths, how many packages list them,
how many paths are shared between packages, and how many diversions
are in effect.`,
		Run: func(cmd *cobra.Command, args []string) {
			runStats(adminDir, rootDir)
		},
	}

	cmd.Flags().StringVarP(&adminDir, "admindir", "d", "", "Path to the seam administrative directory (required)")
	cmd.Flags().StringVar(&rootDir, "root", "", "Filesystem root the database describes")

	cmd.MarkFlagRequired("admindir")

	return cmd
}

func runStats(adminDir, rootDir string) {
	tbl := fsys.New()
	tbl.SetRoot(rootDir)

	packages, err := LoadStatusArea(tbl, adminDir)
	if err != nil {
		log.Fatalf("Failed to load status area: %v", err)
	}

	shared := 0
	for node := range tbl.Iterate {
		if node.Packages != nil && node.Packages.Next != nil {
			shared++
		}
	}

	diversions := 0
	for range tbl.Diversions {
		diversions++
	}

	fmt.Printf("Paths:      %d\n", tbl.Len())
	fmt.Printf("Packages:   %d\n", len(packages))
	fmt.Printf("Shared:     %d\n", shared)
	fmt.Printf("Diversions: %d\n", diversions)
	fmt.Printf("Root:       %s\n", tbl.Root())
	fmt.Printf("Generation: %s\n", tbl.Generation())
}
