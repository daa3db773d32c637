package cli

import (
	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
)

func newInitCmd() *cobra.Command {
	var fallbackBranch string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a branchwire workspace",
		Long: `Initialize a branchwire workspace in the workspace directory.

The fallback branch is used for upstream multi-branch projects that have no
branch of the same name. It defaults to "develop".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := helpers.WorkspaceRoot(cmd)
			splog, err := helpers.NewSplog(cmd, root)
			if err != nil {
				return err
			}
			defer splog.Close()

			return actions.InitAction(splog, actions.InitOptions{
				Root:           root,
				FallbackBranch: fallbackBranch,
			})
		},
	}

	cmd.Flags().StringVar(&fallbackBranch, "fallback-branch", "", "Branch to build after when an upstream project has no matching branch")

	return cmd
}
