package upstream

import (
	"strings"
)

// DefaultFallbackBranch is the branch tried when the upstream project has no
// branch matching the downstream branch name
const DefaultFallbackBranch = "develop"

// Separator joins upstream project names in a trigger's list
const Separator = ","

// Trigger is the narrow view of a reverse-build trigger the rewriter needs
type Trigger interface {
	UpstreamProjects() string
	SetUpstreamProjects(projects string)
}

// Container is a multi-branch project as seen by the rewriter
type Container interface {
	// BranchFullName returns the full name of the named branch project, if it exists
	BranchFullName(branchName string) (string, bool)
}

// Resolver looks up multi-branch projects by exact, case-sensitive full name
type Resolver interface {
	ResolveContainer(fullName string) (Container, bool)
}

// Rewriter maps upstream references onto branch projects.
// It holds no state between calls.
type Rewriter struct {
	resolver       Resolver
	fallbackBranch string
}

// NewRewriter creates a rewriter resolving names through resolver.
// An empty fallbackBranch selects DefaultFallbackBranch.
func NewRewriter(resolver Resolver, fallbackBranch string) *Rewriter {
	if fallbackBranch == "" {
		fallbackBranch = DefaultFallbackBranch
	}
	return &Rewriter{
		resolver:       resolver,
		fallbackBranch: fallbackBranch,
	}
}

// FallbackBranch returns the branch name tried after the downstream branch name
func (r *Rewriter) FallbackBranch() string {
	return r.fallbackBranch
}

// UpdateForBranch rewrites the trigger's upstream list for branchName.
// The trigger is only written when the rebuilt list differs from the current one;
// the return value reports whether a write happened.
func (r *Rewriter) UpdateForBranch(trigger Trigger, branchName string) bool {
	if trigger == nil {
		return false
	}

	current := trigger.UpstreamProjects()
	rewritten := r.Rewrite(current, branchName)
	if rewritten == current {
		return false
	}

	trigger.SetUpstreamProjects(rewritten)
	return true
}

// Rewrite returns the upstream list with every multi-branch project reference
// replaced by its branch project for branchName. Blank entries are dropped and
// the relative order of the remaining entries is preserved.
func (r *Rewriter) Rewrite(projects, branchName string) string {
	names := make([]string, 0, strings.Count(projects, Separator)+1)
	for _, name := range strings.Split(projects, Separator) {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}

		name = strings.TrimSpace(r.resolve(name, branchName))
		if name == "" {
			continue
		}

		names = append(names, name)
	}
	return strings.Join(names, Separator)
}

func (r *Rewriter) resolve(projectName, branchName string) string {
	if r.resolver == nil {
		return projectName
	}

	container, ok := r.resolver.ResolveContainer(projectName)
	if !ok {
		return projectName
	}

	if fullName, ok := container.BranchFullName(branchName); ok && fullName != "" {
		return fullName
	}
	if fullName, ok := container.BranchFullName(r.fallbackBranch); ok && fullName != "" {
		return fullName
	}
	return projectName
}

// SplitList parses an upstream list into trimmed, non-blank names
func SplitList(projects string) []string {
	var names []string
	for _, name := range strings.Split(projects, Separator) {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// JoinList formats names as an upstream list
func JoinList(names []string) string {
	return strings.Join(SplitList(strings.Join(names, Separator)), Separator)
}
