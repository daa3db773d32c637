package runtime

import (
	"fmt"

	"branchwire.dev/branchwire/internal/config"
	"branchwire.dev/branchwire/internal/output"
	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/store"
)

// Context provides access to the workspace and output for commands
type Context struct {
	Registry *project.Registry
	Store    *store.Store
	Splog    *output.Splog
	Root     string
}

// NewContext loads the workspace at root. Upstream references are re-resolved
// after loading, as the branch set may have changed since the last run.
func NewContext(root string, splog *output.Splog) (*Context, error) {
	fallback, err := config.GetFallbackBranch(root)
	if err != nil {
		return nil, err
	}

	st := store.New(root)
	reg := project.NewRegistry(
		project.WithStorage(st),
		project.WithFallbackBranch(fallback),
		project.WithLogger(splog),
	)
	if err := st.Load(reg); err != nil {
		return nil, fmt.Errorf("failed to load workspace %s: %w", root, err)
	}
	if err := reg.RefreshAll(); err != nil {
		return nil, err
	}

	return &Context{
		Registry: reg,
		Store:    st,
		Splog:    splog,
		Root:     root,
	}, nil
}

// GetContext checks that root is an initialized workspace and loads it
func GetContext(root string, splog *output.Splog) (*Context, error) {
	if !config.IsInitialized(root) {
		return nil, fmt.Errorf("%s is not a branchwire workspace. Run 'branchwire init' first", root)
	}
	return NewContext(root, splog)
}
