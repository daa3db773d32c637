// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"io"

	"github.com/spf13/cobra"

	"branchwire.dev/branchwire/internal/output"
	"branchwire.dev/branchwire/internal/runtime"
)

// CompleteContainers is a helper for cobra.ValidArgsFunction that returns the
// names of all multi-branch projects in the workspace.
func CompleteContainers(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, err := runtime.GetContext(WorkspaceRoot(cmd), output.NewSplog(io.Discard))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, c := range ctx.Registry.Containers() {
		names = append(names, c.FullName())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// CompleteProjects is a helper for cobra.ValidArgsFunction that returns the
// full names of all projects, branch projects included.
func CompleteProjects(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, err := runtime.GetContext(WorkspaceRoot(cmd), output.NewSplog(io.Discard))
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, item := range ctx.Registry.Items() {
		names = append(names, item.FullName())
	}
	for _, p := range ctx.Registry.Projects() {
		if _, ok := ctx.Registry.Item(p.FullName()); !ok {
			names = append(names, p.FullName())
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
