package output

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"branchwire.dev/branchwire/internal/project"
)

// TreeRenderOptions configures RenderTree
type TreeRenderOptions struct {
	Root         string
	ShowTemplate bool
}

// RenderTree draws the registry's items with their branch projects, or only the
// item named by opts.Root. Each buildable project is annotated with its upstream
// projects.
func RenderTree(reg *project.Registry, styler Styler, opts TreeRenderOptions) string {
	rootName := opts.Root
	if rootName == "" {
		rootName = "."
	}
	tree := treeprint.NewWithRoot(rootName)

	for _, item := range reg.Items() {
		if opts.Root != "" && item.FullName() != opts.Root {
			continue
		}
		switch item := item.(type) {
		case *project.FreeStyleProject:
			tree.AddNode(projectLabel(styler, item.Name(), item.IsDisabled(), item.UpstreamProjectNames()))
		case *project.MultiBranchProject:
			label := styler.Cyan(item.Name())
			if item.IsDisabled() {
				label += " " + styler.Red("(disabled)")
			}
			branch := tree.AddMetaBranch("multi-branch", label)
			if t := item.Template(); opts.ShowTemplate && t != nil {
				branch.AddMetaNode("template", styler.Dim(upstreamSuffix(t.UpstreamProjectNames(), "no upstream")))
			}
			for _, b := range item.Branches() {
				branch.AddNode(projectLabel(styler, b.Name(), b.IsDisabled(), b.UpstreamProjectNames()))
			}
		}
	}
	return tree.String()
}

func projectLabel(styler Styler, name string, disabled bool, upstream []string) string {
	var b strings.Builder
	b.WriteString(name)
	if disabled {
		b.WriteString(" " + styler.Red("(disabled)"))
	}
	if len(upstream) > 0 {
		b.WriteString(" " + styler.Dim(upstreamSuffix(upstream, "")))
	}
	return b.String()
}

func upstreamSuffix(upstream []string, empty string) string {
	if len(upstream) == 0 {
		return empty
	}
	return fmt.Sprintf("<- %s", strings.Join(upstream, ", "))
}
