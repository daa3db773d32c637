package branch

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
	"branchwire.dev/branchwire/internal/runtime"
)

// NewSyncCmd creates the sync command
func NewSyncCmd() *cobra.Command {
	var (
		dryRun    bool
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "sync <multi-branch project> [branch...]",
		Short: "Make the branch projects match the given branches",
		Long: `Make the branch projects of a multi-branch project match the given branches.

Branch projects for new branches are created from the template, and branch
projects for branches that are gone are deleted. Upstream projects are then
re-resolved across the workspace. With --stdin, branch names are read one per
line, so the output of 'git branch --format=%(refname:short)' can be piped in.`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: helpers.CompleteContainers,
		RunE: func(cmd *cobra.Command, args []string) error {
			branches := append([]string(nil), args[1:]...)
			if fromStdin {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					branches = append(branches, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read branch names: %w", err)
				}
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.BranchSyncAction(ctx, actions.BranchSyncOptions{
					Container: args[0],
					Branches:  branches,
					DryRun:    dryRun,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would change without changing anything")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read branch names from standard input")

	return cmd
}
