package project

import (
	"branchwire.dev/branchwire/internal/upstream"
)

// Job is the generic project core: name, description, own disabled flag,
// triggers and properties. Concrete project types embed it and supply the
// owning Item used for persistence.
type Job struct {
	owner       Item
	name        string
	description string
	disabled    bool
	triggers    *TriggerList
	properties  *PropertyList
	storage     func() Storage
}

func newJob(owner Item, name string, storage func() Storage) *Job {
	return &Job{
		owner:      owner,
		name:       name,
		triggers:   NewTriggerList(),
		properties: NewPropertyList(),
		storage:    storage,
	}
}

// Name returns the job's name within its parent
func (j *Job) Name() string {
	return j.name
}

// Description returns the job description
func (j *Job) Description() string {
	return j.description
}

// SetDescription updates the description without saving
func (j *Job) SetDescription(description string) {
	j.description = description
}

// IsDisabled reports the job's own disabled flag
func (j *Job) IsDisabled() bool {
	return j.disabled
}

// SetDisabled updates the disabled flag and saves
func (j *Job) SetDisabled(disabled bool) error {
	j.disabled = disabled
	return j.Save()
}

// Triggers returns the configured triggers in order
func (j *Job) Triggers() []Trigger {
	return j.triggers.Values()
}

// Trigger returns the trigger of the given kind
func (j *Job) Trigger(kind string) (Trigger, bool) {
	return j.triggers.Get(kind)
}

// Properties returns the configured properties in order
func (j *Job) Properties() []JobProperty {
	return j.properties.Values()
}

// ReplaceTriggers clears the trigger set and adds triggers. It does not save.
func (j *Job) ReplaceTriggers(triggers ...Trigger) {
	j.triggers.ReplaceAll(triggers...)
}

// ReplaceProperties clears the property list and appends props. It does not save.
func (j *Job) ReplaceProperties(props ...JobProperty) {
	j.properties.ReplaceAll(props...)
}

// ReverseBuildTrigger returns the job's reverse-build trigger, or nil
func (j *Job) ReverseBuildTrigger() *ReverseBuildTrigger {
	return j.triggers.ReverseBuildTrigger()
}

// UpstreamProjectNames returns the names listed by the reverse-build trigger
func (j *Job) UpstreamProjectNames() []string {
	t := j.ReverseBuildTrigger()
	if t == nil {
		return nil
	}
	return upstream.SplitList(t.UpstreamProjects())
}

// Save persists the owning item
func (j *Job) Save() error {
	if j.storage == nil {
		return nil
	}
	s := j.storage()
	if s == nil {
		return nil
	}
	return s.SaveItem(j.owner)
}

func (j *Job) document(kind string) *Document {
	return &Document{
		Kind:        kind,
		Description: j.description,
		Disabled:    j.disabled,
		Triggers:    encodeTriggers(j.triggers.Values()),
		Properties:  encodeProperties(j.properties.Values()),
	}
}

func (j *Job) applyDocument(doc *Document) error {
	triggers, err := decodeTriggers(doc.Triggers)
	if err != nil {
		return err
	}
	props, err := decodeProperties(doc.Properties)
	if err != nil {
		return err
	}
	j.description = doc.Description
	j.disabled = doc.Disabled
	j.triggers.ReplaceAll(triggers...)
	j.properties.ReplaceAll(props...)
	return nil
}
