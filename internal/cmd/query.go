package cmd

import (
	"fmt"
	"log"

	"github.com/seampkg/seam/fsys"
	"github.com/spf13/cobra"
)

// NewQueryCmd creates and returns the query subcommand for the seam CLI.
// It resolves paths against the loaded database.
func NewQueryCmd() *cobra.Command {
	var (
		adminDir string
		rootDir  string
		asPkg    string
	)

	cmd := &cobra.Command{
		Use:   "query PATH...",
		Short: "Resolve paths to their owners and diversions",
		Long: `Resolve one or more paths against the database.

For each path this prints its canonical form, the packages listing it,
any diversion in effect (honoring the exempt package when --package is
given), and the real on-disk location under the configured root.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runQuery(adminDir, rootDir, asPkg, args)
		},
	}

	cmd.Flags().StringVarP(&adminDir, "admindir", "d", "", "Path to the seam administrative directory (required)")
	cmd.Flags().StringVar(&rootDir, "root", "", "Filesystem root the database describes")
	cmd.Flags().StringVarP(&asPkg, "package", "p", "", "Resolve diversions as this package")

	cmd.MarkFlagRequired("admindir")

	return cmd
}

func runQuery(adminDir, rootDir, asPkg string, paths []string) {
	tbl := fsys.New()
	tbl.SetRoot(rootDir)

	packages, err := LoadStatusArea(tbl, adminDir)
	if err != nil {
		log.Fatalf("Failed to load status area: %v", err)
	}

	var requester *fsys.Package
	if asPkg != "" {
		requester = packages[asPkg]
		if requester == nil {
			log.Fatalf("Unknown package: %s", asPkg)
		}
	}

	for _, path := range paths {
		canonical := fsys.Canonical(path)
		fmt.Printf("%s:\n", canonical)

		node := tbl.Find(path, fsys.FindNoCreate)
		if node == nil {
			fmt.Println("  not in database")
			continue
		}

		it := node.NewOwnersIter()
		owned := false
		for pkg := it.Next(); pkg != nil; pkg = it.Next() {
			fmt.Printf("  owner: %s\n", pkg.Name)
			owned = true
		}
		it.Close()
		if !owned {
			fmt.Println("  no owning package")
		}

		if effective := node.Resolve(requester); effective != node {
			fmt.Printf("  diverted to: %s\n", effective.Name)
			if exempt := node.Divert.ExemptPkg; exempt != nil {
				fmt.Printf("  except for: %s\n", exempt.Name)
			}
			node = effective
		}
		fmt.Printf("  on disk: %s\n", tbl.RealPath(node.Name))
	}
}
