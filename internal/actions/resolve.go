package actions

import (
	"fmt"
	"strings"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
)

// resolveItem finds a top-level item, a branch project ("<container>/<branch>"),
// or a template ("<container>/template" when no such branch exists)
func resolveItem(ctx *runtime.Context, fullName string) (project.Item, error) {
	if item, ok := ctx.Registry.Item(fullName); ok {
		return item, nil
	}

	containerName, branchName, ok := strings.Cut(fullName, "/")
	if !ok {
		return nil, fmt.Errorf("%s: %w", fullName, bwerrors.ErrItemNotFound)
	}
	c, err := resolveContainer(ctx, containerName)
	if err != nil {
		return nil, err
	}
	if b, ok := c.Branch(branchName); ok {
		return b, nil
	}
	if branchName == project.TemplateName && c.Template() != nil {
		return c.Template(), nil
	}
	return nil, bwerrors.NewBranchNotFoundError(c.FullName(), branchName)
}

func resolveContainer(ctx *runtime.Context, name string) (*project.MultiBranchProject, error) {
	c, ok := ctx.Registry.FindContainer(name)
	if !ok {
		return nil, bwerrors.NewContainerNotFoundError(name)
	}
	return c, nil
}

func resolveBranch(ctx *runtime.Context, containerName, branchName string) (*project.BranchProject, error) {
	c, err := resolveContainer(ctx, containerName)
	if err != nil {
		return nil, err
	}
	b, ok := c.Branch(branchName)
	if !ok {
		return nil, bwerrors.NewBranchNotFoundError(containerName, branchName)
	}
	return b, nil
}
