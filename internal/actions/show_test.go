package actions_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"branchwire.dev/branchwire/internal/actions"
	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
	"branchwire.dev/branchwire/testhelpers"
)

func TestTreeAction(t *testing.T) {
	scene := testhelpers.NewScene(t, "", testhelpers.UpstreamContainersSetup)
	ctx := scene.Context(t)
	scene.Output.Reset()

	require.NoError(t, actions.TreeAction(ctx, actions.TreeOptions{Root: "app"}))
	out := scene.Output.String()
	require.Contains(t, out, "feature-1 <- lib/feature-1, tools")
	require.NotContains(t, out, "]  lib")

	require.ErrorIs(t, actions.TreeAction(ctx, actions.TreeOptions{Root: "ghost"}), bwerrors.ErrItemNotFound)
}

func TestUpstreamAction(t *testing.T) {
	scene := testhelpers.NewScene(t, "", testhelpers.UpstreamContainersSetup)
	ctx := scene.Context(t)
	scene.Output.Reset()

	require.NoError(t, actions.UpstreamAction(ctx))
	out := scene.Output.String()
	require.Contains(t, out, "app/feature-2")
	require.Contains(t, out, "lib/develop")
}

func TestOrderAction(t *testing.T) {
	t.Run("upstream projects come first", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "", testhelpers.UpstreamContainersSetup)
		ctx := scene.Context(t)
		scene.Output.Reset()

		require.NoError(t, actions.OrderAction(ctx))
		out := scene.Output.String()
		require.Less(t, indexOf(t, out, "lib/feature-1"), indexOf(t, out, "app/feature-1"))
		require.Less(t, indexOf(t, out, "tools"), indexOf(t, out, "app/develop"))
	})

	t.Run("cycles are reported", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "", func(_ *testhelpers.Scene, ctx *runtime.Context) error {
			a, err := ctx.Registry.CreateFreeStyleProject("a")
			if err != nil {
				return err
			}
			a.ReplaceTriggers(project.NewReverseBuildTrigger("b", ""))
			b, err := ctx.Registry.CreateFreeStyleProject("b")
			if err != nil {
				return err
			}
			b.ReplaceTriggers(project.NewReverseBuildTrigger("a", ""))
			return nil
		})

		err := actions.OrderAction(scene.Context(t))
		require.ErrorIs(t, err, bwerrors.ErrDependencyCycle)
	})
}

func TestRefreshAction(t *testing.T) {
	scene := testhelpers.NewScene(t, "", testhelpers.UpstreamContainersSetup)
	ctx := scene.Context(t)

	require.NoError(t, actions.RefreshAction(ctx))
	require.Contains(t, scene.Output.String(), "Upstream references are up to date.")
	testhelpers.ExpectUpstream(t, ctx.Registry, "app/feature-2", "lib/develop,tools")
}

func indexOf(t *testing.T, s, substr string) int {
	t.Helper()
	i := strings.Index(s, substr)
	require.NotEqual(t, -1, i, "%q not in %q", substr, s)
	return i
}
