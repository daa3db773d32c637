package cli

import (
	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Create, delete, enable and disable projects",
	}

	cmd.AddCommand(newProjectCreateCmd())
	cmd.AddCommand(newProjectDeleteCmd())
	cmd.AddCommand(newProjectSetDisabledCmd("disable", true))
	cmd.AddCommand(newProjectSetDisabledCmd("enable", false))

	return cmd
}

func newProjectCreateCmd() *cobra.Command {
	var (
		multiBranch bool
		opts        actions.CreateProjectOptions
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project or a multi-branch project",
		Long: `Create a top-level project.

Plain projects may build after other projects (--upstream). Multi-branch
projects are configured through their template with 'branchwire template set'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts.Name = args[0]
				opts.Kind = project.KindFreeStyle
				if multiBranch {
					opts.Kind = project.KindMultiBranch
				}
				return actions.CreateProjectAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&multiBranch, "multibranch", "m", false, "Create a multi-branch project")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Project description")
	cmd.Flags().StringVarP(&opts.Upstream, "upstream", "u", "", "Comma-separated projects to build after")
	cmd.Flags().StringVar(&opts.Threshold, "threshold", "", "Worst upstream result that still triggers a build (SUCCESS, UNSTABLE, FAILURE)")
	cmd.Flags().StringVar(&opts.Timer, "timer", "", "Cron-style schedule")

	return cmd
}

func newProjectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <name>",
		Short:             "Delete a top-level project and everything stored for it",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteProjects,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DeleteProjectAction(ctx, args[0])
			})
		},
	}
}

func newProjectSetDisabledCmd(use string, disabled bool) *cobra.Command {
	short := "Enable a project"
	if disabled {
		short = "Disable a project. Disabling a multi-branch project disables all of its branch projects"
	}

	return &cobra.Command{
		Use:               use + " <name>",
		Short:             short,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteProjects,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SetDisabledAction(ctx, args[0], disabled)
			})
		},
	}
}
