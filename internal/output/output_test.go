package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"branchwire.dev/branchwire/internal/graph"
	"branchwire.dev/branchwire/internal/project"
)

func testRegistry(t *testing.T) *project.Registry {
	t.Helper()
	reg := project.NewRegistry()
	_, err := reg.CreateFreeStyleProject("plain")
	require.NoError(t, err)
	app, err := reg.CreateMultiBranchProject("app")
	require.NoError(t, err)
	require.NoError(t, app.SetTemplateConfig([]project.Trigger{project.NewReverseBuildTrigger("plain,ghost", "")}, nil))
	_, err = app.SyncBranches([]string{"main"})
	require.NoError(t, err)
	return reg
}

func TestRenderTree(t *testing.T) {
	t.Parallel()
	out := RenderTree(testRegistry(t), Styler{}, TreeRenderOptions{ShowTemplate: true})

	require.True(t, strings.HasPrefix(out, ".\n"), out)
	require.Contains(t, out, "plain")
	require.Contains(t, out, "[multi-branch]  app")
	require.Contains(t, out, "[template]  <- plain, ghost")
	require.Contains(t, out, "main <- plain, ghost")
}

func TestRenderTreeSingleRoot(t *testing.T) {
	t.Parallel()
	out := RenderTree(testRegistry(t), Styler{}, TreeRenderOptions{Root: "app"})

	require.True(t, strings.HasPrefix(out, "app\n"), out)
	require.Contains(t, out, "main <- plain, ghost")
	require.NotContains(t, out, "[template]")
	require.NotContains(t, out, "plain\n")
}

func TestRenderUpstreamTable(t *testing.T) {
	t.Parallel()
	reg := testRegistry(t)
	out := RenderUpstreamTable(reg, graph.Build(reg), Styler{})

	require.Contains(t, out, "PROJECT")
	require.Contains(t, out, "app/main")
	require.Contains(t, out, "ghost (unknown)")
	require.Contains(t, out, "enabled")
}

func TestStylerDisabledForBuffers(t *testing.T) {
	t.Parallel()
	s := NewStyler(&bytes.Buffer{})
	require.Equal(t, "text", s.Red("text"))
	require.Equal(t, "text", s.Dim("text"))
}

func TestSplogWritesConsoleAndFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "branchwire.log")
	var console bytes.Buffer

	splog, err := NewSplogWithConfig(&console, logPath)
	require.NoError(t, err)
	splog.Info("created %s", "app/main")
	splog.Debug("debug detail")
	splog.Warn("ignoring flag of %s", "app/feat")
	splog.SetQuiet(true)
	splog.Info("hidden")
	require.NoError(t, splog.Close())

	require.Contains(t, console.String(), "created app/main")
	require.NotContains(t, console.String(), "hidden")
	require.Contains(t, console.String(), "ignoring flag of app/feat")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "created app/main")
	require.Contains(t, string(data), "debug detail")
	require.Contains(t, string(data), "hidden")
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("BRANCHWIRE_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())
}
