package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/sut-eval/internal/evalcase"
)

func newListCmd() *cobra.Command {
	var caseSetsDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available case sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := evalcase.List(caseSetsDir)
			if err != nil {
				return fmt.Errorf("failed to list case sets: %w", err)
			}

			if len(names) == 0 {
				fmt.Println("No case sets found.")
				return nil
			}

			fmt.Printf("Available case sets (%d):\n\n", len(names))
			for _, name := range names {
				cs, err := evalcase.Load(name, caseSetsDir)
				if err != nil {
					fmt.Printf("  %s (failed to load: %v)\n", name, err)
					continue
				}
				fmt.Printf("  %s\n", cs.Name)
				fmt.Printf("    Description: %s\n", cs.Description)
				fmt.Printf("    Version: %s, Cases: %d\n", cs.Version, len(cs.Cases))
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&caseSetsDir, "case-sets-dir", "", "External case sets directory (optional)")

	return cmd
}
