package actions

import (
	"strings"

	"branchwire.dev/branchwire/internal/runtime"
)

// BranchAddAction creates a branch project in a multi-branch project
func BranchAddAction(ctx *runtime.Context, containerName, branchName string) error {
	c, err := resolveContainer(ctx, containerName)
	if err != nil {
		return err
	}
	if _, err := c.AddBranch(branchName); err != nil {
		return err
	}
	// Other branches may now resolve to the new branch
	return ctx.Registry.RefreshAll()
}

// BranchRemoveAction deletes a branch project
func BranchRemoveAction(ctx *runtime.Context, containerName, branchName string) error {
	c, err := resolveContainer(ctx, containerName)
	if err != nil {
		return err
	}
	if err := c.RemoveBranch(branchName); err != nil {
		return err
	}
	return ctx.Registry.RefreshAll()
}

// BranchSyncOptions contains options for the branch sync command
type BranchSyncOptions struct {
	Container string
	Branches  []string
	DryRun    bool
}

// BranchSyncAction makes the container's branch set match opts.Branches
func BranchSyncAction(ctx *runtime.Context, opts BranchSyncOptions) error {
	c, err := resolveContainer(ctx, opts.Container)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(opts.Branches))
	for _, name := range opts.Branches {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	if opts.DryRun {
		wanted := make(map[string]bool, len(names))
		for _, name := range names {
			wanted[name] = true
		}
		for _, name := range c.BranchNames() {
			if !wanted[name] {
				ctx.Splog.Info("Would delete branch project %s/%s.", c.FullName(), name)
			}
		}
		for _, name := range names {
			if _, ok := c.Branch(name); !ok {
				ctx.Splog.Info("Would create branch project %s/%s.", c.FullName(), name)
			}
		}
		return nil
	}

	result, err := c.SyncBranches(names)
	if err != nil {
		return err
	}
	if len(result.Added) == 0 && len(result.Removed) == 0 {
		ctx.Splog.Info("Branches of %s are up to date.", c.FullName())
		return nil
	}
	ctx.Splog.Info("Synced %s: %d added, %d removed.", c.FullName(), len(result.Added), len(result.Removed))
	return nil
}

// BranchRenameAction attempts to rename a branch project. Branch project names
// follow their SCM branch, so this always fails.
func BranchRenameAction(ctx *runtime.Context, containerName, branchName, newName string) error {
	b, err := resolveBranch(ctx, containerName, branchName)
	if err != nil {
		return err
	}
	return b.Rename(newName)
}
