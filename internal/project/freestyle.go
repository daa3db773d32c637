package project

import "fmt"

// FreeStyleProject is a plain top-level project
type FreeStyleProject struct {
	*Job
}

func newFreeStyleProject(registry *Registry, name string) *FreeStyleProject {
	p := &FreeStyleProject{}
	p.Job = newJob(p, name, registry.Storage)
	return p
}

// FullName implements Item
func (p *FreeStyleProject) FullName() string {
	return p.Name()
}

// Document implements Item
func (p *FreeStyleProject) Document() *Document {
	return p.document(KindFreeStyle)
}

// SubmitConfiguration replaces the project's configuration with doc and saves
func (p *FreeStyleProject) SubmitConfiguration(doc *Document) error {
	if doc == nil || doc.Kind != KindFreeStyle {
		return fmt.Errorf("expected a %s document for %s", KindFreeStyle, p.FullName())
	}
	if err := p.applyDocument(doc); err != nil {
		return err
	}
	return p.Save()
}
