package branch

import (
	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
	"branchwire.dev/branchwire/internal/runtime"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "add <multi-branch project> <branch>",
		Short:             "Create a branch project from the template",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: helpers.CompleteContainers,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.BranchAddAction(ctx, args[0], args[1])
			})
		},
	}
}

// NewRemoveCmd creates the rm command
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "rm <multi-branch project> <branch>",
		Aliases:           []string{"delete"},
		Short:             "Delete a branch project",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: helpers.CompleteContainers,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.BranchRemoveAction(ctx, args[0], args[1])
			})
		},
	}
}
