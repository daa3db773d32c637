package project

import (
	"fmt"
	"io"
	"net/http"

	bwerrors "branchwire.dev/branchwire/internal/errors"
)

// TemplateName is the name given to a multi-branch project's template instance
const TemplateName = "template"

// BranchProject is the project for a single branch of a multi-branch project,
// or the hidden template whose configuration seeds new branches.
//
// Branch projects are only created and deleted by their multi-branch project.
// They cannot be renamed, and their configuration cannot be submitted directly:
// it comes from the template.
type BranchProject struct {
	*Job
	parent *MultiBranchProject
}

func newBranchProject(parent *MultiBranchProject, name string) *BranchProject {
	b := &BranchProject{parent: parent}
	b.Job = newJob(b, name, parent.storage)
	return b
}

// OnLoad attaches a loaded branch project to its parent. rawName is the
// on-disk directory name and is decoded before use.
func (b *BranchProject) OnLoad(parent *MultiBranchProject, rawName string) error {
	name, err := DecodeName(rawName)
	if err != nil {
		return err
	}
	b.parent = parent
	b.name = name
	b.storage = parent.storage
	return nil
}

// Parent returns the owning multi-branch project
func (b *BranchProject) Parent() *MultiBranchProject {
	return b.parent
}

// FullName implements Item
func (b *BranchProject) FullName() string {
	return b.parent.FullName() + "/" + b.Name()
}

// IsTemplate reports whether this is the parent's template. Only the instance
// the parent holds as its template is one; a stored flag never makes a branch
// the template.
func (b *BranchProject) IsTemplate() bool {
	return b.parent != nil && b.parent.template == b
}

// SetIsTemplate records the template flag and saves immediately. The flag
// follows the parent's template instance, so a branch cannot be turned into
// the template nor the template into a branch. A save failure is returned as is.
func (b *BranchProject) SetIsTemplate(isTemplate bool) error {
	if isTemplate != b.IsTemplate() {
		return bwerrors.NewUnsupportedOperationError("changing the template flag", b.FullName(),
			"the template of a multi-branch project is fixed")
	}
	return b.Save()
}

// IsDisabled reports whether the branch is effectively disabled: disabling the
// parent disables every branch. The parent is consulted on every call.
func (b *BranchProject) IsDisabled() bool {
	return b.parent.IsDisabled() || b.Job.IsDisabled()
}

// Rename always fails. Branch projects are added and removed by their parent.
func (b *BranchProject) Rename(newName string) error {
	return bwerrors.NewUnsupportedOperationError("rename", b.FullName(),
		"renaming branch projects is not supported; they should only be added or deleted")
}

// SubmitConfiguration always fails. Branch configuration comes from the template.
func (b *BranchProject) SubmitConfiguration(doc *Document) error {
	return bwerrors.NewUnsupportedOperationError("configuration submission", b.FullName(),
		"this branch project's configuration cannot be edited directly")
}

// ConfigDocument serves the serialized configuration. GET (or HEAD) writes the
// document to w; a POST is a configuration submission and is rejected.
func (b *BranchProject) ConfigDocument(method string, body io.Reader, w io.Writer) error {
	switch method {
	case http.MethodGet, http.MethodHead, "":
	case http.MethodPost:
		return b.SubmitConfiguration(nil)
	default:
		return bwerrors.NewUnsupportedOperationError(method+" configuration", b.FullName(), "")
	}

	data, err := MarshalDocument(b.Document())
	if err != nil {
		return err
	}
	if method == http.MethodHead {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write configuration of %s: %w", b.FullName(), err)
	}
	return nil
}

// RefreshUpstreamTriggerReferences re-resolves the reverse-build trigger's
// upstream list for this branch and saves if the list changed. Projects without
// a reverse-build trigger, and the template, are left alone.
func (b *BranchProject) RefreshUpstreamTriggerReferences() error {
	if b.IsTemplate() {
		return nil
	}
	trigger := b.ReverseBuildTrigger()
	if trigger == nil {
		return nil
	}

	before := trigger.UpstreamProjects()
	if !b.parent.rewriter().UpdateForBranch(trigger, b.Name()) {
		return nil
	}
	b.parent.log().Debug("Rewrote upstream projects of %s: %q -> %q", b.FullName(), before, trigger.UpstreamProjects())
	return b.Save()
}

// Document implements Item
func (b *BranchProject) Document() *Document {
	doc := b.document(KindBranchProject)
	doc.Template = b.IsTemplate()
	return doc
}
