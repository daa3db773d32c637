package helpers

import (
	"os"

	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/config"
	"branchwire.dev/branchwire/internal/output"
	"branchwire.dev/branchwire/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	root := WorkspaceRoot(cmd)
	splog, err := NewSplog(cmd, root)
	if err != nil {
		return err
	}
	defer splog.Close()

	ctx, err := runtime.GetContext(root, splog)
	if err != nil {
		return err
	}
	return fn(ctx)
}

// WorkspaceRoot returns the workspace directory from --root, then
// BRANCHWIRE_ROOT, then the current directory
func WorkspaceRoot(cmd *cobra.Command) string {
	if root, _ := cmd.Flags().GetString("root"); root != "" {
		return root
	}
	if root := os.Getenv("BRANCHWIRE_ROOT"); root != "" {
		return root
	}
	return "."
}

// NewSplog creates the command's logger. Messages go to the command's output;
// they are also written to the workspace's log file, or BRANCHWIRE_LOG_FILE,
// when one is configured.
func NewSplog(cmd *cobra.Command, root string) (*output.Splog, error) {
	logFile := os.Getenv("BRANCHWIRE_LOG_FILE")
	if config.IsInitialized(root) {
		if configured, err := config.GetLogFile(root); err == nil && configured != "" {
			logFile = configured
		}
	}

	splog, err := output.NewSplogWithConfig(cmd.OutOrStdout(), logFile)
	if err != nil {
		return nil, err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		splog.SetDebug(true)
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		splog.SetQuiet(true)
	}
	return splog, nil
}
