package actions

import (
	"branchwire.dev/branchwire/internal/runtime"
)

// RefreshAction re-resolves the upstream references of every branch project.
// Loading the workspace already does this; the command exists to make it
// explicit after editing stored files by hand.
func RefreshAction(ctx *runtime.Context) error {
	if err := ctx.Registry.RefreshAll(); err != nil {
		return err
	}
	ctx.Splog.Info("Upstream references are up to date.")
	return nil
}
