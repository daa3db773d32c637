package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/actions"
	"branchwire.dev/branchwire/internal/cli/helpers"
	"branchwire.dev/branchwire/internal/runtime"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or replace the stored configuration of a project",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSubmitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the configuration document of a project",
		Long: `Print the configuration document of a project.

Branch projects are named <multi-branch project>/<branch>; the template is
<multi-branch project>/template.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteProjects,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigShowAction(ctx, args[0], cmd.OutOrStdout())
			})
		},
	}
}

func newConfigSubmitCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "submit <name>",
		Short: "Replace the configuration of a project with a document",
		Long: `Replace the configuration of a project with a YAML document read from --file,
or from standard input.

Branch project configuration is owned by the template and cannot be submitted.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteProjects,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				var r io.Reader = cmd.InOrStdin()
				if file != "" && file != "-" {
					f, err := os.Open(file)
					if err != nil {
						return fmt.Errorf("failed to open %s: %w", file, err)
					}
					defer f.Close()
					r = f
				}
				return actions.ConfigSubmitAction(ctx, args[0], r)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the document from this file instead of standard input")

	return cmd
}
