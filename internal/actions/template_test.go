package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"branchwire.dev/branchwire/internal/actions"
	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
	"branchwire.dev/branchwire/testhelpers"
)

func TestTemplateSetAction(t *testing.T) {
	t.Run("stamps the template onto every branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "", testhelpers.UpstreamContainersSetup)
		ctx := scene.Context(t)

		err := actions.TemplateSetAction(ctx, actions.TemplateSetOptions{
			Container:   "app",
			Description: "application",
			Upstream:    "lib",
			Threshold:   "UNSTABLE",
			Timer:       "H 2 * * *",
			NumToKeep:   10,
			Parameters:  []string{"TARGET=staging", "DRY_RUN="},
		})
		require.NoError(t, err)

		testhelpers.ExpectUpstream(t, ctx.Registry, "app/develop", "lib/develop")
		testhelpers.ExpectUpstream(t, ctx.Registry, "app/feature-1", "lib/feature-1")
		testhelpers.ExpectUpstream(t, ctx.Registry, "app/feature-2", "lib/develop")

		app, ok := ctx.Registry.FindContainer("app")
		require.True(t, ok)
		for _, b := range app.Branches() {
			require.Equal(t, "application", b.Description())
			require.Equal(t, project.ThresholdUnstable, b.ReverseBuildTrigger().Threshold)
			_, ok := b.Trigger(project.TriggerKindTimer)
			require.True(t, ok)
			require.Len(t, b.Properties(), 2)
		}

		// The template keeps the unqualified names
		require.Equal(t, "lib", app.Template().ReverseBuildTrigger().UpstreamProjects())

		stored := scene.ReadStored(t, "app", "branches", "feature-1")
		require.Contains(t, stored, "upstreamProjects: lib/feature-1")
		require.Contains(t, stored, "name: TARGET")
		require.Contains(t, stored, "numToKeep: 10")
	})

	t.Run("omitted options are removed", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "", testhelpers.UpstreamContainersSetup)
		ctx := scene.Context(t)

		require.NoError(t, actions.TemplateSetAction(ctx, actions.TemplateSetOptions{Container: "app", Timer: "@daily"}))

		p, ok := ctx.Registry.Project("app/develop")
		require.True(t, ok)
		require.Nil(t, p.ReverseBuildTrigger())
		require.Empty(t, p.UpstreamProjectNames())
	})

	t.Run("invalid parameter", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "", testhelpers.UpstreamContainersSetup)

		err := actions.TemplateSetAction(scene.Context(t), actions.TemplateSetOptions{
			Container:  "app",
			Parameters: []string{"=value"},
		})
		require.ErrorContains(t, err, "invalid parameter")
	})

	t.Run("unknown container", func(t *testing.T) {
		scene := testhelpers.NewScene(t, "", nil)

		err := actions.TemplateSetAction(scene.Context(t), actions.TemplateSetOptions{Container: "app"})
		require.ErrorIs(t, err, bwerrors.ErrContainerNotFound)
	})
}

func TestCustomFallbackBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, "main", func(_ *testhelpers.Scene, ctx *runtime.Context) error {
		lib, err := ctx.Registry.CreateMultiBranchProject("lib")
		if err != nil {
			return err
		}
		if _, err := lib.SyncBranches([]string{"main", "develop"}); err != nil {
			return err
		}
		_, err = ctx.Registry.CreateMultiBranchProject("app")
		return err
	})
	ctx := scene.Context(t)

	require.NoError(t, actions.TemplateSetAction(ctx, actions.TemplateSetOptions{Container: "app", Upstream: "lib"}))
	require.NoError(t, actions.BranchAddAction(ctx, "app", "feature-9"))

	testhelpers.ExpectUpstream(t, ctx.Registry, "app/feature-9", "lib/main")
}
