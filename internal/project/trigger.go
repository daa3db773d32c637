package project

import (
	"branchwire.dev/branchwire/internal/upstream"
)

// Trigger kinds
const (
	TriggerKindReverseBuild = "reverse-build"
	TriggerKindTimer        = "timer"
	TriggerKindSCM          = "scm"
)

// Trigger starts builds of the project it is configured on
type Trigger interface {
	Kind() string
	Clone() Trigger
}

// Threshold is the worst upstream result that still fires a reverse-build trigger
type Threshold string

// Thresholds accepted by ReverseBuildTrigger
const (
	ThresholdSuccess  Threshold = "SUCCESS"
	ThresholdUnstable Threshold = "UNSTABLE"
	ThresholdFailure  Threshold = "FAILURE"
)

// ReverseBuildTrigger fires when one of the listed upstream projects completes
// a build at or above Threshold. The upstream list is a comma-separated string
// of project full names.
type ReverseBuildTrigger struct {
	upstreamProjects string
	Threshold        Threshold
}

var _ upstream.Trigger = (*ReverseBuildTrigger)(nil)

// NewReverseBuildTrigger creates a reverse-build trigger.
// An empty threshold means ThresholdSuccess.
func NewReverseBuildTrigger(upstreamProjects string, threshold Threshold) *ReverseBuildTrigger {
	if threshold == "" {
		threshold = ThresholdSuccess
	}
	return &ReverseBuildTrigger{
		upstreamProjects: upstreamProjects,
		Threshold:        threshold,
	}
}

// Kind implements Trigger
func (t *ReverseBuildTrigger) Kind() string { return TriggerKindReverseBuild }

// Clone implements Trigger
func (t *ReverseBuildTrigger) Clone() Trigger {
	c := *t
	return &c
}

// UpstreamProjects returns the raw upstream list
func (t *ReverseBuildTrigger) UpstreamProjects() string {
	return t.upstreamProjects
}

// SetUpstreamProjects replaces the raw upstream list
func (t *ReverseBuildTrigger) SetUpstreamProjects(projects string) {
	t.upstreamProjects = projects
}

// TimerTrigger builds periodically on a cron-style schedule
type TimerTrigger struct {
	Spec string
}

// Kind implements Trigger
func (t *TimerTrigger) Kind() string { return TriggerKindTimer }

// Clone implements Trigger
func (t *TimerTrigger) Clone() Trigger {
	c := *t
	return &c
}

// SCMTrigger polls source control on a cron-style schedule
type SCMTrigger struct {
	Spec                  string
	IgnorePostCommitHooks bool
}

// Kind implements Trigger
func (t *SCMTrigger) Kind() string { return TriggerKindSCM }

// Clone implements Trigger
func (t *SCMTrigger) Clone() Trigger {
	c := *t
	return &c
}

// TriggerList is an ordered set of triggers with at most one trigger per kind
type TriggerList struct {
	items []Trigger
}

// NewTriggerList creates a list holding triggers, later kinds replacing earlier ones
func NewTriggerList(triggers ...Trigger) *TriggerList {
	l := &TriggerList{}
	for _, t := range triggers {
		l.Add(t)
	}
	return l
}

// Add appends t, or replaces in place the trigger of the same kind
func (l *TriggerList) Add(t Trigger) {
	if t == nil {
		return
	}
	for i, existing := range l.items {
		if existing.Kind() == t.Kind() {
			l.items[i] = t
			return
		}
	}
	l.items = append(l.items, t)
}

// Get returns the trigger of the given kind
func (l *TriggerList) Get(kind string) (Trigger, bool) {
	for _, t := range l.items {
		if t.Kind() == kind {
			return t, true
		}
	}
	return nil, false
}

// Remove deletes the trigger of the given kind, reporting whether one existed
func (l *TriggerList) Remove(kind string) bool {
	for i, t := range l.items {
		if t.Kind() == kind {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Values returns the triggers in order. The slice is a copy; the triggers are not.
func (l *TriggerList) Values() []Trigger {
	out := make([]Trigger, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of triggers
func (l *TriggerList) Len() int {
	return len(l.items)
}

// ReplaceAll clears the list and adds triggers
func (l *TriggerList) ReplaceAll(triggers ...Trigger) {
	l.items = nil
	for _, t := range triggers {
		l.Add(t)
	}
}

// Clone returns a deep copy of the list
func (l *TriggerList) Clone() *TriggerList {
	c := &TriggerList{items: make([]Trigger, 0, len(l.items))}
	for _, t := range l.items {
		c.items = append(c.items, t.Clone())
	}
	return c
}

// ReverseBuildTrigger returns the list's reverse-build trigger, or nil
func (l *TriggerList) ReverseBuildTrigger() *ReverseBuildTrigger {
	t, ok := l.Get(TriggerKindReverseBuild)
	if !ok {
		return nil
	}
	rbt, _ := t.(*ReverseBuildTrigger)
	return rbt
}
