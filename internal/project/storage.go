package project

// Item is anything held by the registry or by a multi-branch project
type Item interface {
	Name() string
	FullName() string
	Document() *Document
}

// Storage persists items. SaveItem must be all-or-nothing: either the new
// document is durably stored or an error is returned and the old one remains.
type Storage interface {
	SaveItem(item Item) error
	DeleteItem(item Item) error
	// CloneTemplate copies the template's stored files into a new branch location
	CloneTemplate(container *MultiBranchProject, branchName string) error
}

// Logger receives diagnostic messages from the model
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}

// Buildable is a project that can be built and triggered
type Buildable interface {
	FullName() string
	IsDisabled() bool
	ReverseBuildTrigger() *ReverseBuildTrigger
	UpstreamProjectNames() []string
}
