// Package cli defines the branchwire command tree.
package cli

import (
	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/cli/branch"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "branchwire",
		Short: "Branchwire keeps upstream triggers of multi-branch projects pointing at the right branches",
		Long: `Branchwire manages a workspace of build projects. Multi-branch projects hold one
branch project per SCM branch, stamped from a template. Whenever branches come
and go, every branch project's "build after" list is rewritten to name the
matching branch of each upstream multi-branch project, or its fallback branch.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("root", "", "Workspace directory (default: $BRANCHWIRE_ROOT or the current directory)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newTemplateCmd())
	rootCmd.AddCommand(branch.NewBranchCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newUpstreamCmd())
	rootCmd.AddCommand(newOrderCmd())

	return rootCmd
}
