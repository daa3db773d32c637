package testhelpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"branchwire.dev/branchwire/internal/config"
	"branchwire.dev/branchwire/internal/output"
	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
)

// Scene represents a test scene with an initialized workspace in a temporary
// directory. Console output is captured in Output.
type Scene struct {
	Dir    string
	Output *bytes.Buffer
	Splog  *output.Splog
	ctx    *runtime.Context
}

// SceneSetup is a function type for setting up a scene against its loaded
// workspace.
type SceneSetup func(*Scene, *runtime.Context) error

// NewScene creates an initialized workspace with the given fallback branch
// ("" keeps the default) and runs setup against it.
func NewScene(t *testing.T, fallbackBranch string, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, config.Initialize(dir))
	if fallbackBranch != "" {
		require.NoError(t, config.SetFallbackBranch(dir, fallbackBranch))
	}

	buf := &bytes.Buffer{}
	scene := &Scene{
		Dir:    dir,
		Output: buf,
		Splog:  output.NewSplog(buf),
	}

	if setup != nil {
		require.NoError(t, setup(scene, scene.Context(t)))
	}
	return scene
}

// Context returns the scene's loaded workspace, loading it on first use
func (s *Scene) Context(t *testing.T) *runtime.Context {
	t.Helper()
	if s.ctx == nil {
		s.ctx = s.Reload(t)
	}
	return s.ctx
}

// Reload loads the workspace from disk again, as a new process would
func (s *Scene) Reload(t *testing.T) *runtime.Context {
	t.Helper()
	ctx, err := runtime.GetContext(s.Dir, s.Splog)
	require.NoError(t, err)
	s.ctx = ctx
	return ctx
}

// Registry returns the registry of the scene's workspace
func (s *Scene) Registry(t *testing.T) *project.Registry {
	t.Helper()
	return s.Context(t).Registry
}

// ReadStored returns the stored configuration document at a path relative to
// the workspace's jobs directory
func (s *Scene) ReadStored(t *testing.T, rel ...string) string {
	t.Helper()
	parts := append([]string{s.Dir, "jobs"}, rel...)
	parts = append(parts, "config.yaml")
	data, err := os.ReadFile(filepath.Join(parts...))
	require.NoError(t, err)
	return string(data)
}

// UpstreamContainersSetup creates a multi-branch project "lib" with branches
// develop and feature-1, a plain project "tools", and a multi-branch project
// "app" whose template builds after "lib" and "tools".
func UpstreamContainersSetup(_ *Scene, ctx *runtime.Context) error {
	reg := ctx.Registry
	if _, err := reg.CreateFreeStyleProject("tools"); err != nil {
		return err
	}
	lib, err := reg.CreateMultiBranchProject("lib")
	if err != nil {
		return err
	}
	if _, err := lib.SyncBranches([]string{"develop", "feature-1"}); err != nil {
		return err
	}
	app, err := reg.CreateMultiBranchProject("app")
	if err != nil {
		return err
	}
	trigger := project.NewReverseBuildTrigger("lib, tools", project.ThresholdSuccess)
	if err := app.SetTemplateConfig([]project.Trigger{trigger}, nil); err != nil {
		return err
	}
	_, err = app.SyncBranches([]string{"develop", "feature-1", "feature-2"})
	return err
}
