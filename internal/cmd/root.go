package cmd

import (
	"github.com/seampkg/seam/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the seam CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seam",
		Short: "seam - file-ownership database for installed packages",
		Long: `seam tracks which package owns every path on the filesystem.

It rebuilds its in-memory database on each run from an administrative
directory containing one file manifest per package plus the registered
diversions, then answers ownership, diversion and consistency questions
about any path.

Use subcommands to perform different operations:
  - stats: Print database statistics for a status area
  - query: Resolve paths to their owners and diversions
  - diversions: List all currently diverted paths`,
		Version: version.GetFullVersion(),
	}

	groupDatabase := "database"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupDatabase,
		Title: "Database Operations",
	})

	statsCmd := NewStatsCmd()
	queryCmd := NewQueryCmd()
	diversionsCmd := NewDiversionsCmd()

	statsCmd.GroupID = groupDatabase
	queryCmd.GroupID = groupDatabase
	diversionsCmd.GroupID = groupDatabase

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(diversionsCmd)

	return rootCmd
}
