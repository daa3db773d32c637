package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/graph"
	"branchwire.dev/branchwire/internal/project"
)

func setup(t *testing.T) *project.Registry {
	t.Helper()
	reg := project.NewRegistry()

	base, err := reg.CreateFreeStyleProject("base")
	require.NoError(t, err)
	base.ReplaceTriggers(&project.TimerTrigger{Spec: "@daily"})

	lib, err := reg.CreateMultiBranchProject("lib")
	require.NoError(t, err)
	require.NoError(t, lib.SetTemplateConfig([]project.Trigger{project.NewReverseBuildTrigger("base", "")}, nil))
	_, err = lib.SyncBranches([]string{"develop", "feature-1"})
	require.NoError(t, err)

	app, err := reg.CreateMultiBranchProject("app")
	require.NoError(t, err)
	require.NoError(t, app.SetTemplateConfig([]project.Trigger{project.NewReverseBuildTrigger("lib,ghost", "")}, nil))
	_, err = app.SyncBranches([]string{"feature-1", "feature-2"})
	require.NoError(t, err)
	return reg
}

func indexOf(order []string, name string) int {
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}

func TestGraph(t *testing.T) {
	t.Parallel()
	g := graph.Build(setup(t))

	require.Equal(t, []string{"app/feature-1", "app/feature-2", "base", "lib/develop", "lib/feature-1"}, g.Nodes())
	require.Equal(t, []string{"lib/feature-1"}, g.Upstream("app/feature-1"))
	require.Equal(t, []string{"lib/develop"}, g.Upstream("app/feature-2"))
	require.Equal(t, []string{"lib/develop", "lib/feature-1"}, g.Downstream("base"))
	require.Equal(t, []string{"app/feature-2"}, g.Downstream("lib/develop"))
	require.Equal(t, []string{"ghost"}, g.Dangling("app/feature-1"))
	require.Empty(t, g.Upstream("base"))
}

func TestBuildOrder(t *testing.T) {
	t.Parallel()
	g := graph.Build(setup(t))

	order, err := g.BuildOrder()
	require.NoError(t, err)
	require.Len(t, order, 5)
	for _, name := range g.Nodes() {
		for _, up := range g.Upstream(name) {
			require.Less(t, indexOf(order, up), indexOf(order, name), "%s before %s", up, name)
		}
	}
}

func TestBuildOrderCycle(t *testing.T) {
	t.Parallel()
	reg := project.NewRegistry()
	a, err := reg.CreateFreeStyleProject("a")
	require.NoError(t, err)
	b, err := reg.CreateFreeStyleProject("b")
	require.NoError(t, err)
	a.ReplaceTriggers(project.NewReverseBuildTrigger("b", ""))
	b.ReplaceTriggers(project.NewReverseBuildTrigger("a", ""))

	_, err = graph.Build(reg).BuildOrder()
	require.ErrorIs(t, err, bwerrors.ErrDependencyCycle)
}

func TestBuildOrderWithRepeatedUpstream(t *testing.T) {
	t.Parallel()
	reg := project.NewRegistry()
	_, err := reg.CreateFreeStyleProject("a")
	require.NoError(t, err)
	b, err := reg.CreateFreeStyleProject("b")
	require.NoError(t, err)
	b.ReplaceTriggers(project.NewReverseBuildTrigger("a, a, ghost, ghost", ""))

	g := graph.Build(reg)
	require.Equal(t, []string{"a"}, g.Upstream("b"))
	require.Equal(t, []string{"b"}, g.Downstream("a"))
	require.Equal(t, []string{"ghost"}, g.Dangling("b"))

	order, err := g.BuildOrder()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, order)
}

func TestBuildOrderWithQualifiedAndContainerName(t *testing.T) {
	t.Parallel()
	reg := project.NewRegistry()
	lib, err := reg.CreateMultiBranchProject("lib")
	require.NoError(t, err)
	_, err = lib.SyncBranches([]string{"develop"})
	require.NoError(t, err)
	app, err := reg.CreateMultiBranchProject("app")
	require.NoError(t, err)
	require.NoError(t, app.SetTemplateConfig([]project.Trigger{project.NewReverseBuildTrigger("lib, lib/develop", "")}, nil))
	_, err = app.SyncBranches([]string{"develop"})
	require.NoError(t, err)

	g := graph.Build(reg)
	require.Equal(t, []string{"lib/develop"}, g.Upstream("app/develop"))

	order, err := g.BuildOrder()
	require.NoError(t, err)
	require.Less(t, indexOf(order, "lib/develop"), indexOf(order, "app/develop"))
}
