package cmd

import (
	"fmt"
	"log"

	"github.com/seampkg/seam/fsys"
	"github.com/spf13/cobra"
)

// NewDiversionsCmd creates and returns the diversions subcommand for
// the seam CLI. It lists every diversion currently registered.
func NewDiversionsCmd() *cobra.Command {
	var adminDir string

	cmd := &cobra.Command{
		Use:   "diversions",
		Short: "List all currently diverted paths",
		Long: `List every diversion registered in the status area.

Each line shows the contested path, the path its contents actually
live at, and the package (if any) permitted to use the contested path
unredirected.`,
		Run: func(cmd *cobra.Command, args []string) {
			runDiversions(adminDir)
		},
	}

	cmd.Flags().StringVarP(&adminDir, "admindir", "d", "", "Path to the seam administrative directory (required)")

	cmd.MarkFlagRequired("admindir")

	return cmd
}

func runDiversions(adminDir string) {
	tbl := fsys.New()

	if _, err := LoadStatusArea(tbl, adminDir); err != nil {
		log.Fatalf("Failed to load status area: %v", err)
	}

	count := 0
	for d := range tbl.Diversions {
		if d.ExemptPkg != nil {
			fmt.Printf("%s -> %s (except for %s)\n", d.Contested().Name, d.UseInstead.Name, d.ExemptPkg.Name)
		} else {
			fmt.Printf("%s -> %s\n", d.Contested().Name, d.UseInstead.Name)
		}
		count++
	}
	if count == 0 {
		fmt.Println("No diversions registered")
	}
}
