// Package branch provides the branch project subcommands.
package branch

import (
	"github.com/spf13/cobra"
)

// NewBranchCmd creates the branch command group
func NewBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branch",
		Aliases: []string{"b"},
		Short:   "Manage the branch projects of a multi-branch project",
	}

	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewRemoveCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewRenameCmd())

	return cmd
}
