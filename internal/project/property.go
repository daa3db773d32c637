package project

// Property kinds
const (
	PropertyKindParameters     = "parameters"
	PropertyKindBuildDiscarder = "build-discarder"
)

// JobProperty is an optional piece of job configuration
type JobProperty interface {
	Kind() string
	Clone() JobProperty
}

// Parameter is a single string build parameter
type Parameter struct {
	Name        string `yaml:"name"`
	Default     string `yaml:"default,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// ParametersProperty declares the parameters a build accepts
type ParametersProperty struct {
	Parameters []Parameter
}

// Kind implements JobProperty
func (p *ParametersProperty) Kind() string { return PropertyKindParameters }

// Clone implements JobProperty
func (p *ParametersProperty) Clone() JobProperty {
	c := &ParametersProperty{}
	if p.Parameters != nil {
		c.Parameters = append([]Parameter(nil), p.Parameters...)
	}
	return c
}

// BuildDiscarderProperty limits how many builds are kept.
// Zero means no limit.
type BuildDiscarderProperty struct {
	NumToKeep  int
	DaysToKeep int
}

// Kind implements JobProperty
func (p *BuildDiscarderProperty) Kind() string { return PropertyKindBuildDiscarder }

// Clone implements JobProperty
func (p *BuildDiscarderProperty) Clone() JobProperty {
	c := *p
	return &c
}

// PropertyList is an ordered list of job properties
type PropertyList struct {
	items []JobProperty
}

// NewPropertyList creates a list holding props
func NewPropertyList(props ...JobProperty) *PropertyList {
	l := &PropertyList{}
	l.ReplaceAll(props...)
	return l
}

// Add appends p
func (l *PropertyList) Add(p JobProperty) {
	if p != nil {
		l.items = append(l.items, p)
	}
}

// Get returns the first property of the given kind
func (l *PropertyList) Get(kind string) (JobProperty, bool) {
	for _, p := range l.items {
		if p.Kind() == kind {
			return p, true
		}
	}
	return nil, false
}

// Values returns the properties in order. The slice is a copy; the properties are not.
func (l *PropertyList) Values() []JobProperty {
	out := make([]JobProperty, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of properties
func (l *PropertyList) Len() int {
	return len(l.items)
}

// Clear removes every property
func (l *PropertyList) Clear() {
	l.items = nil
}

// ReplaceAll clears the list and appends props
func (l *PropertyList) ReplaceAll(props ...JobProperty) {
	l.Clear()
	for _, p := range props {
		l.Add(p)
	}
}

// Clone returns a deep copy of the list
func (l *PropertyList) Clone() *PropertyList {
	c := &PropertyList{items: make([]JobProperty, 0, len(l.items))}
	for _, p := range l.items {
		c.items = append(c.items, p.Clone())
	}
	return c
}
