package project

import (
	"fmt"
	"sort"
	"strings"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/upstream"
)

// Registry holds the top-level items of a workspace and resolves projects by
// full name. It replaces any process-wide lookup: everything that needs to find
// a project is handed a Registry.
//
// Registry is not safe for concurrent use.
type Registry struct {
	items          map[string]Item
	storage        Storage
	fallbackBranch string
	log            Logger
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithStorage sets the storage used to persist items
func WithStorage(s Storage) RegistryOption {
	return func(r *Registry) { r.storage = s }
}

// WithFallbackBranch sets the branch tried when an upstream project has no
// branch matching the downstream branch
func WithFallbackBranch(name string) RegistryOption {
	return func(r *Registry) { r.fallbackBranch = name }
}

// WithLogger sets the logger for model diagnostics
func WithLogger(l Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		items:          make(map[string]Item),
		fallbackBranch: upstream.DefaultFallbackBranch,
		log:            nopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.fallbackBranch == "" {
		r.fallbackBranch = upstream.DefaultFallbackBranch
	}
	return r
}

// Storage returns the storage items are persisted to, possibly nil
func (r *Registry) Storage() Storage {
	return r.storage
}

// FallbackBranch returns the configured fallback branch name
func (r *Registry) FallbackBranch() string {
	return r.fallbackBranch
}

// Rewriter returns an upstream rewriter resolving against this registry
func (r *Registry) Rewriter() *upstream.Rewriter {
	return upstream.NewRewriter(r, r.fallbackBranch)
}

// ItemKinds lists the kinds offered for new top-level items. Branch projects
// are only ever created by their multi-branch project, so they are not offered.
func ItemKinds() []string {
	return []string{KindFreeStyle, KindMultiBranch}
}

// NewItem creates, saves and registers a top-level item of the given kind
func (r *Registry) NewItem(kind, name string) (Item, error) {
	switch kind {
	case KindFreeStyle:
		return r.CreateFreeStyleProject(name)
	case KindMultiBranch:
		return r.CreateMultiBranchProject(name)
	case KindBranchProject:
		return nil, bwerrors.NewUnsupportedOperationError("creating "+kind, name,
			"branch projects are created by their multi-branch project")
	default:
		return nil, fmt.Errorf("unknown item kind %q (expected one of %s)", kind, strings.Join(ItemKinds(), ", "))
	}
}

// CreateFreeStyleProject creates, saves and registers a plain project
func (r *Registry) CreateFreeStyleProject(name string) (*FreeStyleProject, error) {
	if err := r.checkNewName(name); err != nil {
		return nil, err
	}
	p := newFreeStyleProject(r, name)
	if err := p.Save(); err != nil {
		return nil, err
	}
	r.items[name] = p
	r.log.Info("Created project %s", name)
	return p, nil
}

// CreateMultiBranchProject creates, saves and registers a multi-branch project
// along with its template
func (r *Registry) CreateMultiBranchProject(name string) (*MultiBranchProject, error) {
	if err := r.checkNewName(name); err != nil {
		return nil, err
	}
	c := newMultiBranchProject(r, name)
	if err := c.Save(); err != nil {
		return nil, err
	}
	if _, err := c.EnsureTemplate(); err != nil {
		return nil, err
	}
	r.items[name] = c
	r.log.Info("Created multi-branch project %s", name)
	return c, nil
}

// LoadFreeStyleProject registers a plain project restored from storage
func (r *Registry) LoadFreeStyleProject(name string, doc *Document) (*FreeStyleProject, error) {
	if err := r.checkNewName(name); err != nil {
		return nil, err
	}
	p := newFreeStyleProject(r, name)
	if err := p.applyDocument(doc); err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", name, err)
	}
	r.items[name] = p
	return p, nil
}

// LoadMultiBranchProject registers a multi-branch project restored from storage.
// Its template and branches are loaded separately.
func (r *Registry) LoadMultiBranchProject(name string, doc *Document) (*MultiBranchProject, error) {
	if err := r.checkNewName(name); err != nil {
		return nil, err
	}
	c := newMultiBranchProject(r, name)
	c.description = doc.Description
	c.disabled = doc.Disabled
	r.items[name] = c
	return c, nil
}

// DeleteItem removes a top-level item and its storage
func (r *Registry) DeleteItem(fullName string) error {
	item, ok := r.items[fullName]
	if !ok {
		return fmt.Errorf("%s: %w", fullName, bwerrors.ErrItemNotFound)
	}
	if r.storage != nil {
		if err := r.storage.DeleteItem(item); err != nil {
			return err
		}
	}
	delete(r.items, fullName)
	r.log.Info("Deleted %s", fullName)
	return nil
}

// Item returns the top-level item with the given full name
func (r *Registry) Item(fullName string) (Item, bool) {
	item, ok := r.items[fullName]
	return item, ok
}

// Items returns every top-level item sorted by full name
func (r *Registry) Items() []Item {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Item, 0, len(names))
	for _, name := range names {
		out = append(out, r.items[name])
	}
	return out
}

// Containers returns every multi-branch project sorted by full name
func (r *Registry) Containers() []*MultiBranchProject {
	var out []*MultiBranchProject
	for _, item := range r.Items() {
		if c, ok := item.(*MultiBranchProject); ok {
			out = append(out, c)
		}
	}
	return out
}

// FindContainer returns the multi-branch project with exactly this full name
func (r *Registry) FindContainer(fullName string) (*MultiBranchProject, bool) {
	c, ok := r.items[fullName].(*MultiBranchProject)
	return c, ok
}

// ResolveContainer implements upstream.Resolver
func (r *Registry) ResolveContainer(fullName string) (upstream.Container, bool) {
	c, ok := r.FindContainer(fullName)
	if !ok {
		return nil, false
	}
	return c, true
}

// Project resolves a buildable project: a plain project by name, or a branch
// project as "<multi-branch project>/<branch>"
func (r *Registry) Project(fullName string) (Buildable, bool) {
	if p, ok := r.items[fullName].(*FreeStyleProject); ok {
		return p, true
	}
	containerName, branchName, ok := strings.Cut(fullName, "/")
	if !ok {
		return nil, false
	}
	c, ok := r.FindContainer(containerName)
	if !ok {
		return nil, false
	}
	b, ok := c.Branch(branchName)
	if !ok {
		return nil, false
	}
	return b, true
}

// Projects returns every buildable project: plain projects and branch
// projects, templates excluded
func (r *Registry) Projects() []Buildable {
	var out []Buildable
	for _, item := range r.Items() {
		switch item := item.(type) {
		case *FreeStyleProject:
			out = append(out, item)
		case *MultiBranchProject:
			for _, b := range item.Branches() {
				out = append(out, b)
			}
		}
	}
	return out
}

// RefreshAll re-applies every template and re-resolves upstream references of
// every branch project
func (r *Registry) RefreshAll() error {
	for _, c := range r.Containers() {
		if err := c.ApplyTemplate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) checkNewName(name string) error {
	if err := validateTopLevelName(name); err != nil {
		return err
	}
	if _, exists := r.items[name]; exists {
		return fmt.Errorf("%s: %w", name, bwerrors.ErrItemExists)
	}
	return nil
}
