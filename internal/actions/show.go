package actions

import (
	"fmt"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/graph"
	"branchwire.dev/branchwire/internal/output"
	"branchwire.dev/branchwire/internal/runtime"
)

// TreeOptions contains options for the tree command
type TreeOptions struct {
	Root         string
	ShowTemplate bool
}

// TreeAction prints the project tree
func TreeAction(ctx *runtime.Context, opts TreeOptions) error {
	if opts.Root != "" {
		if _, ok := ctx.Registry.Item(opts.Root); !ok {
			return fmt.Errorf("%s: %w", opts.Root, bwerrors.ErrItemNotFound)
		}
	}
	styler := output.NewStyler(ctx.Splog.Writer())
	ctx.Splog.Page(output.RenderTree(ctx.Registry, styler, output.TreeRenderOptions{
		Root:         opts.Root,
		ShowTemplate: opts.ShowTemplate,
	}))
	return nil
}

// UpstreamAction prints the upstream and downstream projects of every project
func UpstreamAction(ctx *runtime.Context) error {
	g := graph.Build(ctx.Registry)
	styler := output.NewStyler(ctx.Splog.Writer())
	ctx.Splog.Page(output.RenderUpstreamTable(ctx.Registry, g, styler))
	return nil
}

// OrderAction prints the projects in an order where every project comes after
// its upstream projects
func OrderAction(ctx *runtime.Context) error {
	order, err := graph.Build(ctx.Registry).BuildOrder()
	if err != nil {
		return err
	}
	ctx.Splog.Page(output.RenderBuildOrder(order))
	return nil
}
