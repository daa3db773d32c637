package actions

import (
	"branchwire.dev/branchwire/internal/config"
	"branchwire.dev/branchwire/internal/output"
)

// InitOptions contains options for the init command
type InitOptions struct {
	Root           string
	FallbackBranch string
}

// InitAction marks a directory as a branchwire workspace
func InitAction(splog *output.Splog, opts InitOptions) error {
	alreadyInitialized := config.IsInitialized(opts.Root)
	if err := config.Initialize(opts.Root); err != nil {
		return err
	}
	if opts.FallbackBranch != "" {
		if err := config.SetFallbackBranch(opts.Root, opts.FallbackBranch); err != nil {
			return err
		}
	}

	fallback, err := config.GetFallbackBranch(opts.Root)
	if err != nil {
		return err
	}

	if alreadyInitialized {
		splog.Info("Workspace %s already initialized (fallback branch: %s).", opts.Root, fallback)
		return nil
	}
	splog.Info("Initialized workspace %s (fallback branch: %s).", opts.Root, fallback)
	splog.Tip("Create a multi-branch project with 'branchwire project create --multibranch <name>'.")
	return nil
}
