// Package graph derives the build dependency graph from reverse-build triggers.
package graph

import (
	"fmt"
	"sort"

	toposort "github.com/philopon/go-toposort"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
)

// Graph maps projects to the projects they trigger and are triggered by.
// Upstream names that do not resolve to a known project are kept as
// dangling references and are not part of the build order.
type Graph struct {
	nodes      []string
	upstream   map[string][]string
	downstream map[string][]string
	dangling   map[string][]string
}

// Build constructs the graph for every project in reg
func Build(reg *project.Registry) *Graph {
	g := &Graph{
		upstream:   make(map[string][]string),
		downstream: make(map[string][]string),
		dangling:   make(map[string][]string),
	}

	projects := reg.Projects()
	known := make(map[string]bool, len(projects))
	for _, p := range projects {
		g.nodes = append(g.nodes, p.FullName())
		known[p.FullName()] = true
	}
	sort.Strings(g.nodes)

	for _, p := range projects {
		name := p.FullName()
		// A list may name the same project twice, e.g. "lib, lib/develop"
		seen := make(map[string]bool)
		for _, up := range p.UpstreamProjectNames() {
			if seen[up] {
				continue
			}
			seen[up] = true
			if !known[up] {
				g.dangling[name] = append(g.dangling[name], up)
				continue
			}
			g.upstream[name] = append(g.upstream[name], up)
			g.downstream[up] = append(g.downstream[up], name)
		}
	}
	for _, m := range []map[string][]string{g.upstream, g.downstream, g.dangling} {
		for k := range m {
			sort.Strings(m[k])
		}
	}
	return g
}

// Nodes returns every project full name in sorted order
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Upstream returns the projects whose builds trigger name
func (g *Graph) Upstream(name string) []string {
	return append([]string(nil), g.upstream[name]...)
}

// Downstream returns the projects triggered by builds of name
func (g *Graph) Downstream(name string) []string {
	return append([]string(nil), g.downstream[name]...)
}

// Dangling returns the upstream names of name that match no project
func (g *Graph) Dangling(name string) []string {
	return append([]string(nil), g.dangling[name]...)
}

// BuildOrder returns the projects ordered so every project comes after all of
// its upstream projects
func (g *Graph) BuildOrder() ([]string, error) {
	sorter := toposort.NewGraph(len(g.nodes))
	sorter.AddNodes(g.nodes...)
	for _, name := range g.nodes {
		for _, down := range g.downstream[name] {
			sorter.AddEdge(name, down)
		}
	}

	order, ok := sorter.Toposort()
	if !ok {
		return nil, fmt.Errorf("upstream references among %d projects: %w", len(g.nodes), bwerrors.ErrDependencyCycle)
	}
	return order, nil
}
