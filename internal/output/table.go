package output

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"branchwire.dev/branchwire/internal/graph"
	"branchwire.dev/branchwire/internal/project"
)

// RenderUpstreamTable lists every buildable project with its resolved upstream
// and downstream projects. Upstream names that match no project are marked.
func RenderUpstreamTable(reg *project.Registry, g *graph.Graph, styler Styler) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Project", "Upstream", "Downstream", "Status"})

	for _, p := range reg.Projects() {
		name := p.FullName()

		upstream := g.Upstream(name)
		for _, d := range g.Dangling(name) {
			upstream = append(upstream, styler.Yellow(d+" (unknown)"))
		}

		status := styler.Green("enabled")
		if p.IsDisabled() {
			status = styler.Red("disabled")
		}

		t.AppendRow(table.Row{
			name,
			strings.Join(upstream, "\n"),
			strings.Join(g.Downstream(name), "\n"),
			status,
		})
	}
	return t.Render()
}

// RenderBuildOrder numbers projects in build order
func RenderBuildOrder(order []string) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Project"})
	for i, name := range order {
		t.AppendRow(table.Row{i + 1, name})
	}
	return t.Render()
}
