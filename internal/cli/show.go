package cli

import (
	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
	"branchwire.dev/branchwire/internal/runtime"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-resolve the upstream projects of every branch project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.RefreshAction)
		},
	}
}

func newTreeCmd() *cobra.Command {
	var showTemplate bool

	cmd := &cobra.Command{
		Use:               "tree [name]",
		Aliases:           []string{"ls"},
		Short:             "Show projects, their branch projects and upstream projects",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteProjects,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.TreeOptions{ShowTemplate: showTemplate}
				if len(args) > 0 {
					opts.Root = args[0]
				}
				return actions.TreeAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&showTemplate, "template", "t", false, "Show templates")

	return cmd
}

func newUpstreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upstream",
		Short: "Show the upstream and downstream projects of every project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.UpstreamAction)
		},
	}
}

func newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "List projects so that every project comes after its upstream projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.OrderAction)
		},
	}
}
