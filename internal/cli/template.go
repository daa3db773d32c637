package cli

import (
	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
	"branchwire.dev/branchwire/internal/runtime"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Configure the template of a multi-branch project",
	}
	cmd.AddCommand(newTemplateSetCmd())
	return cmd
}

func newTemplateSetCmd() *cobra.Command {
	var opts actions.TemplateSetOptions

	cmd := &cobra.Command{
		Use:   "set <multi-branch project>",
		Short: "Replace the template configuration and apply it to every branch project",
		Long: `Replace the template configuration of a multi-branch project and apply it to
every branch project.

The configuration is rebuilt from the given flags; anything not given is
removed. Upstream names stay as written in the template. Each branch project
gets them rewritten to the matching branch of every upstream multi-branch
project.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteContainers,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts.Container = args[0]
				return actions.TemplateSetAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Description for every branch project")
	cmd.Flags().StringVarP(&opts.Upstream, "upstream", "u", "", "Comma-separated projects to build after")
	cmd.Flags().StringVar(&opts.Threshold, "threshold", "", "Worst upstream result that still triggers a build (SUCCESS, UNSTABLE, FAILURE)")
	cmd.Flags().StringVar(&opts.Timer, "timer", "", "Cron-style schedule")
	cmd.Flags().StringVar(&opts.SCM, "scm", "", "Cron-style SCM polling schedule")
	cmd.Flags().IntVar(&opts.NumToKeep, "num-to-keep", 0, "Number of builds to keep (0 keeps all)")
	cmd.Flags().IntVar(&opts.DaysToKeep, "days-to-keep", 0, "Days to keep builds (0 keeps all)")
	cmd.Flags().StringArrayVarP(&opts.Parameters, "param", "p", nil, "Build parameter as NAME=DEFAULT (repeatable)")

	return cmd
}
