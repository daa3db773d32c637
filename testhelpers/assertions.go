// Package testhelpers provides testing utilities for branchwire, including a
// scene system over temporary workspaces and custom assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"branchwire.dev/branchwire/internal/project"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that a multi-branch project has exactly the expected
// branch projects (the template excluded).
func ExpectBranches(t *testing.T, reg *project.Registry, container string, expected []string) {
	t.Helper()

	c, ok := reg.FindContainer(container)
	require.True(t, ok, "multi-branch project %s not found", container)
	require.ElementsMatch(t, expected, c.BranchNames(), "Branches do not match")
}

// ExpectUpstream asserts the upstream list of a project's reverse-build trigger
// as stored in the trigger (comma-joined).
func ExpectUpstream(t *testing.T, reg *project.Registry, fullName string, expected string) {
	t.Helper()

	p, ok := reg.Project(fullName)
	require.True(t, ok, "project %s not found", fullName)
	trigger := p.ReverseBuildTrigger()
	require.NotNil(t, trigger, "project %s has no reverse-build trigger", fullName)
	require.Equal(t, expected, trigger.UpstreamProjects(), "Upstream projects of %s do not match", fullName)
}
