package project

import (
	"fmt"
	"reflect"
	"sort"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/upstream"
)

// MultiBranchProject owns one BranchProject per branch plus a template
type MultiBranchProject struct {
	name        string
	description string
	disabled    bool
	registry    *Registry
	template    *BranchProject
	branches    map[string]*BranchProject
}

// SyncResult lists the branches added and removed by SyncBranches
type SyncResult struct {
	Added   []string
	Removed []string
}

var _ upstream.Container = (*MultiBranchProject)(nil)

func newMultiBranchProject(registry *Registry, name string) *MultiBranchProject {
	return &MultiBranchProject{
		name:     name,
		registry: registry,
		branches: make(map[string]*BranchProject),
	}
}

// Name implements Item
func (c *MultiBranchProject) Name() string {
	return c.name
}

// FullName implements Item
func (c *MultiBranchProject) FullName() string {
	return c.name
}

// Description returns the project description
func (c *MultiBranchProject) Description() string {
	return c.description
}

// SetDescription updates the description without saving
func (c *MultiBranchProject) SetDescription(description string) {
	c.description = description
}

// IsDisabled reports whether the whole multi-branch project is disabled
func (c *MultiBranchProject) IsDisabled() bool {
	return c.disabled
}

// SetDisabled updates the disabled flag and saves
func (c *MultiBranchProject) SetDisabled(disabled bool) error {
	c.disabled = disabled
	return c.Save()
}

// Save persists the multi-branch project's own document
func (c *MultiBranchProject) Save() error {
	if s := c.storage(); s != nil {
		return s.SaveItem(c)
	}
	return nil
}

// Document implements Item
func (c *MultiBranchProject) Document() *Document {
	return &Document{
		Kind:        KindMultiBranch,
		Description: c.description,
		Disabled:    c.disabled,
	}
}

// SubmitConfiguration applies the description and disabled flag of doc and saves.
// Triggers and properties of a multi-branch project live on its template.
func (c *MultiBranchProject) SubmitConfiguration(doc *Document) error {
	if doc == nil || doc.Kind != KindMultiBranch {
		return fmt.Errorf("expected a %s document for %s", KindMultiBranch, c.FullName())
	}
	if len(doc.Triggers) > 0 || len(doc.Properties) > 0 {
		return fmt.Errorf("%s: triggers and properties belong to the template", c.FullName())
	}
	c.description = doc.Description
	c.disabled = doc.Disabled
	return c.Save()
}

// Template returns the template instance, or nil before EnsureTemplate
func (c *MultiBranchProject) Template() *BranchProject {
	return c.template
}

// Branch returns the branch project with the given name
func (c *MultiBranchProject) Branch(name string) (*BranchProject, bool) {
	b, ok := c.branches[name]
	return b, ok
}

// BranchFullName implements upstream.Container
func (c *MultiBranchProject) BranchFullName(branchName string) (string, bool) {
	b, ok := c.branches[branchName]
	if !ok {
		return "", false
	}
	return b.FullName(), true
}

// Branches returns the branch projects sorted by name. The template is not included.
func (c *MultiBranchProject) Branches() []*BranchProject {
	out := make([]*BranchProject, 0, len(c.branches))
	for _, name := range c.BranchNames() {
		out = append(out, c.branches[name])
	}
	return out
}

// BranchNames returns the branch names in sorted order
func (c *MultiBranchProject) BranchNames() []string {
	names := make([]string, 0, len(c.branches))
	for name := range c.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnsureTemplate creates and saves the template instance if it does not exist
func (c *MultiBranchProject) EnsureTemplate() (*BranchProject, error) {
	if c.template != nil {
		return c.template, nil
	}
	t := newBranchProject(c, TemplateName)
	c.template = t
	if err := t.SetIsTemplate(true); err != nil {
		c.template = nil
		return nil, err
	}
	return t, nil
}

// SetTemplateConfig rebuilds the template's triggers and properties wholesale,
// saves it, and stamps the new configuration onto every branch.
func (c *MultiBranchProject) SetTemplateConfig(triggers []Trigger, props []JobProperty) error {
	t, err := c.EnsureTemplate()
	if err != nil {
		return err
	}
	t.ReplaceTriggers(triggers...)
	t.ReplaceProperties(props...)
	if err := t.Save(); err != nil {
		return err
	}
	return c.ApplyTemplate()
}

// AddBranch creates a branch project from the template, saves it and resolves
// its upstream references
func (c *MultiBranchProject) AddBranch(name string) (*BranchProject, error) {
	if err := validateBranchName(name); err != nil {
		return nil, err
	}
	if _, exists := c.branches[name]; exists {
		return nil, fmt.Errorf("branch %s of %s: %w", name, c.FullName(), bwerrors.ErrItemExists)
	}

	t, err := c.EnsureTemplate()
	if err != nil {
		return nil, err
	}
	if s := c.storage(); s != nil {
		if err := s.CloneTemplate(c, name); err != nil {
			return nil, err
		}
	}

	b := newBranchProject(c, name)
	b.description = t.description
	b.triggers = t.triggers.Clone()
	b.properties = t.properties.Clone()

	// Registered before rewriting so a self-reference resolves to this branch
	c.branches[name] = b
	if trigger := b.ReverseBuildTrigger(); trigger != nil {
		c.rewriter().UpdateForBranch(trigger, name)
	}
	if err := b.Save(); err != nil {
		delete(c.branches, name)
		if s := c.storage(); s != nil {
			if cleanupErr := s.DeleteItem(b); cleanupErr != nil {
				c.log().Warn("Failed to remove partially created branch project %s: %v", b.FullName(), cleanupErr)
			}
		}
		return nil, err
	}

	c.log().Info("Created branch project %s", b.FullName())
	return b, nil
}

// RemoveBranch deletes the named branch project and its storage
func (c *MultiBranchProject) RemoveBranch(name string) error {
	b, ok := c.branches[name]
	if !ok {
		return bwerrors.NewBranchNotFoundError(c.FullName(), name)
	}
	if s := c.storage(); s != nil {
		if err := s.DeleteItem(b); err != nil {
			return err
		}
	}
	delete(c.branches, name)
	c.log().Info("Deleted branch project %s", b.FullName())
	return nil
}

// SyncBranches makes the branch set equal to names: missing branches are created
// from the template and stale ones deleted. Upstream references are then
// re-resolved across the whole registry, since other projects may point here.
func (c *MultiBranchProject) SyncBranches(names []string) (SyncResult, error) {
	var result SyncResult

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	for _, name := range c.BranchNames() {
		if wanted[name] {
			continue
		}
		if err := c.RemoveBranch(name); err != nil {
			return result, err
		}
		result.Removed = append(result.Removed, name)
	}

	for _, name := range names {
		if _, exists := c.branches[name]; exists {
			continue
		}
		if _, err := c.AddBranch(name); err != nil {
			return result, err
		}
		result.Added = append(result.Added, name)
	}

	if len(result.Added) == 0 && len(result.Removed) == 0 {
		return result, nil
	}
	return result, c.registry.RefreshAll()
}

// ApplyTemplate stamps the template's description, triggers and properties onto
// every branch, resolving upstream references per branch. Branches whose
// configuration is already up to date are not saved.
func (c *MultiBranchProject) ApplyTemplate() error {
	if c.template == nil {
		for _, b := range c.Branches() {
			if err := b.RefreshUpstreamTriggerReferences(); err != nil {
				return err
			}
		}
		return nil
	}
	for _, b := range c.Branches() {
		if err := c.restamp(b); err != nil {
			return err
		}
	}
	return nil
}

func (c *MultiBranchProject) restamp(b *BranchProject) error {
	triggers := c.template.triggers.Clone()
	props := c.template.properties.Clone()
	if trigger := triggers.ReverseBuildTrigger(); trigger != nil {
		c.rewriter().UpdateForBranch(trigger, b.Name())
	}

	if b.description == c.template.description &&
		reflect.DeepEqual(encodeTriggers(b.triggers.Values()), encodeTriggers(triggers.Values())) &&
		reflect.DeepEqual(encodeProperties(b.properties.Values()), encodeProperties(props.Values())) {
		return nil
	}

	b.description = c.template.description
	b.triggers = triggers
	b.properties = props
	c.log().Debug("Applied template to %s", b.FullName())
	return b.Save()
}

// LoadTemplate restores the template instance from its stored document
func (c *MultiBranchProject) LoadTemplate(doc *Document) (*BranchProject, error) {
	t := newBranchProject(c, TemplateName)
	if err := t.applyDocument(doc); err != nil {
		return nil, err
	}
	c.template = t
	return t, nil
}

// LoadBranch restores a branch project from its stored document. rawName is
// the on-disk directory name.
func (c *MultiBranchProject) LoadBranch(rawName string, doc *Document) (*BranchProject, error) {
	b := &BranchProject{}
	b.Job = newJob(b, "", nil)
	if err := b.OnLoad(c, rawName); err != nil {
		return nil, err
	}
	if err := b.applyDocument(doc); err != nil {
		return nil, err
	}
	if doc.Template {
		c.log().Warn("Ignoring template flag stored for branch project %s", b.FullName())
	}
	if _, exists := c.branches[b.Name()]; exists {
		return nil, fmt.Errorf("branch %s of %s: %w", b.Name(), c.FullName(), bwerrors.ErrItemExists)
	}
	c.branches[b.Name()] = b
	return b, nil
}

func (c *MultiBranchProject) storage() Storage {
	return c.registry.Storage()
}

func (c *MultiBranchProject) rewriter() *upstream.Rewriter {
	return c.registry.Rewriter()
}

func (c *MultiBranchProject) log() Logger {
	return c.registry.log
}
