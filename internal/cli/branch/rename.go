package branch

import (
	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
	"branchwire.dev/branchwire/internal/runtime"
)

// NewRenameCmd creates the rename command
func NewRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <multi-branch project> <branch> <new name>",
		Short: "Rename a branch project (not supported)",
		Long: `Branch project names follow their SCM branch and cannot be renamed.
Rename the branch in the repository and run 'branchwire branch sync' instead.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.BranchRenameAction(ctx, args[0], args[1], args[2])
			})
		},
	}
}
