package project_test

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
)

func newContainer(t *testing.T, reg *project.Registry, name string, branches ...string) *project.MultiBranchProject {
	t.Helper()
	c, err := reg.CreateMultiBranchProject(name)
	require.NoError(t, err)
	for _, b := range branches {
		_, err := c.AddBranch(b)
		require.NoError(t, err)
	}
	return c
}

func TestBranchProjectDisabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		parentDisabled bool
		branchDisabled bool
		expected       bool
	}{
		{"neither disabled", false, false, false},
		{"only parent disabled", true, false, true},
		{"only branch disabled", false, true, true},
		{"both disabled", true, true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg := project.NewRegistry(project.WithStorage(newMemStorage()))
			c := newContainer(t, reg, "app", "main")
			b, _ := c.Branch("main")

			require.NoError(t, c.SetDisabled(tt.parentDisabled))
			require.NoError(t, b.SetDisabled(tt.branchDisabled))
			require.Equal(t, tt.expected, b.IsDisabled())
		})
	}

	t.Run("follows parent changes", func(t *testing.T) {
		t.Parallel()
		reg := project.NewRegistry(project.WithStorage(newMemStorage()))
		c := newContainer(t, reg, "app", "main")
		b, _ := c.Branch("main")

		require.False(t, b.IsDisabled())
		require.NoError(t, c.SetDisabled(true))
		require.True(t, b.IsDisabled())
		require.NoError(t, c.SetDisabled(false))
		require.False(t, b.IsDisabled())
	})
}

func TestBranchProjectRename(t *testing.T) {
	t.Parallel()

	storage := newMemStorage()
	reg := project.NewRegistry(project.WithStorage(storage))
	c := newContainer(t, reg, "app", "feature-1")
	b, _ := c.Branch("feature-1")
	storage.resetCounts()

	err := b.Rename("feature-2")
	require.Error(t, err)
	require.True(t, errors.Is(err, bwerrors.ErrUnsupportedOperation))

	var unsupported *bwerrors.UnsupportedOperationError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, "rename", unsupported.Op)

	require.Equal(t, "feature-1", b.Name())
	require.Equal(t, "app/feature-1", b.FullName())
	_, ok := c.Branch("feature-2")
	require.False(t, ok)
	require.Empty(t, storage.saves)
}

func TestBranchProjectConfiguration(t *testing.T) {
	t.Parallel()

	reg := project.NewRegistry(project.WithStorage(newMemStorage()))
	c := newContainer(t, reg, "app")
	require.NoError(t, c.SetTemplateConfig(
		[]project.Trigger{&project.TimerTrigger{Spec: "H 2 * * *"}},
		nil,
	))
	b, err := c.AddBranch("main")
	require.NoError(t, err)

	t.Run("submission is rejected", func(t *testing.T) {
		err := b.SubmitConfiguration(&project.Document{Kind: project.KindBranchProject})
		require.ErrorIs(t, err, bwerrors.ErrUnsupportedOperation)
	})

	t.Run("POST is rejected", func(t *testing.T) {
		var out bytes.Buffer
		err := b.ConfigDocument(http.MethodPost, bytes.NewBufferString("kind: freestyle\n"), &out)
		require.ErrorIs(t, err, bwerrors.ErrUnsupportedOperation)
		require.Empty(t, out.String())
		trigger, ok := b.Trigger(project.TriggerKindTimer)
		require.True(t, ok)
		require.Equal(t, "H 2 * * *", trigger.(*project.TimerTrigger).Spec)
	})

	t.Run("GET returns the document", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, b.ConfigDocument(http.MethodGet, nil, &out))

		doc, err := project.UnmarshalDocument(out.Bytes())
		require.NoError(t, err)
		require.Equal(t, project.KindBranchProject, doc.Kind)
		require.False(t, doc.Template)
		require.Len(t, doc.Triggers, 1)
		require.Equal(t, "H 2 * * *", doc.Triggers[0].Spec)
	})
}

func TestBranchProjectTemplateFlag(t *testing.T) {
	t.Parallel()

	t.Run("persists the template", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		c := newContainer(t, reg, "app", "main")
		storage.resetCounts()

		require.True(t, c.Template().IsTemplate())
		require.NoError(t, c.Template().SetIsTemplate(true))
		require.Equal(t, 1, storage.saves["app#template"])
		require.True(t, storage.docs["app#template"].Template)
	})

	t.Run("a branch cannot become the template", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		c := newContainer(t, reg, "app", "main")
		b, _ := c.Branch("main")
		storage.resetCounts()

		require.False(t, b.IsTemplate())
		require.ErrorIs(t, b.SetIsTemplate(true), bwerrors.ErrUnsupportedOperation)
		require.ErrorIs(t, c.Template().SetIsTemplate(false), bwerrors.ErrUnsupportedOperation)
		require.False(t, b.IsTemplate())
		require.Empty(t, storage.saves)
	})

	t.Run("surfaces save failures", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		c := newContainer(t, reg, "app", "main")
		b, _ := c.Branch("main")
		storage.failOn = "app/main"

		err := b.SetDisabled(true)
		require.ErrorIs(t, err, bwerrors.ErrPersistence)
	})
}

func TestBranchProjectOnLoad(t *testing.T) {
	t.Parallel()

	reg := project.NewRegistry()
	c, err := reg.LoadMultiBranchProject("app", &project.Document{Kind: project.KindMultiBranch})
	require.NoError(t, err)

	t.Run("decodes the directory name", func(t *testing.T) {
		b, err := c.LoadBranch("feature%2Flogin", &project.Document{Kind: project.KindBranchProject})
		require.NoError(t, err)
		require.Equal(t, "feature/login", b.Name())
		require.Equal(t, "app/feature/login", b.FullName())

		found, ok := c.Branch("feature/login")
		require.True(t, ok)
		require.Same(t, b, found)
	})

	t.Run("rejects malformed escapes", func(t *testing.T) {
		_, err := c.LoadBranch("bad%zzname", &project.Document{Kind: project.KindBranchProject})
		require.ErrorIs(t, err, bwerrors.ErrNameDecode)
		_, ok := c.Branch("bad%zzname")
		require.False(t, ok)
	})
}

func TestRefreshUpstreamTriggerReferences(t *testing.T) {
	t.Parallel()

	t.Run("no reverse-build trigger is a no-op", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		c := newContainer(t, reg, "app", "main")
		b, _ := c.Branch("main")
		storage.resetCounts()

		require.NoError(t, b.RefreshUpstreamTriggerReferences())
		require.Empty(t, storage.saves)
	})

	t.Run("rewrites container names and saves once", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		newContainer(t, reg, "lib", "feature-1", "develop")
		c := newContainer(t, reg, "app", "feature-1")
		b, _ := c.Branch("feature-1")
		b.ReplaceTriggers(project.NewReverseBuildTrigger("lib, ,plain", ""))
		storage.resetCounts()

		require.NoError(t, b.RefreshUpstreamTriggerReferences())
		require.Equal(t, "lib/feature-1,plain", b.ReverseBuildTrigger().UpstreamProjects())
		require.Equal(t, 1, storage.saves["app/feature-1"])

		require.NoError(t, b.RefreshUpstreamTriggerReferences())
		require.Equal(t, 1, storage.saves["app/feature-1"])
	})

	t.Run("resolved list does not save", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		newContainer(t, reg, "lib", "develop")
		c := newContainer(t, reg, "app", "feature-1")
		b, _ := c.Branch("feature-1")
		b.ReplaceTriggers(project.NewReverseBuildTrigger("lib/develop,plain", ""))
		storage.resetCounts()

		require.NoError(t, b.RefreshUpstreamTriggerReferences())
		require.Equal(t, "lib/develop,plain", b.ReverseBuildTrigger().UpstreamProjects())
		require.Empty(t, storage.saves)
	})

	t.Run("propagates save failures", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		newContainer(t, reg, "lib", "develop")
		c := newContainer(t, reg, "app", "feature-1")
		b, _ := c.Branch("feature-1")
		b.ReplaceTriggers(project.NewReverseBuildTrigger("lib", ""))
		storage.failOn = "app/feature-1"

		err := b.RefreshUpstreamTriggerReferences()
		require.ErrorIs(t, err, bwerrors.ErrPersistence)
	})

	t.Run("template is left alone", func(t *testing.T) {
		t.Parallel()
		storage := newMemStorage()
		reg := project.NewRegistry(project.WithStorage(storage))
		newContainer(t, reg, "lib", "develop")
		c := newContainer(t, reg, "app")
		require.NoError(t, c.SetTemplateConfig([]project.Trigger{project.NewReverseBuildTrigger("lib", "")}, nil))

		require.NoError(t, c.Template().RefreshUpstreamTriggerReferences())
		require.Equal(t, "lib", c.Template().ReverseBuildTrigger().UpstreamProjects())
	})
}
