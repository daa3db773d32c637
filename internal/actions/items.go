package actions

import (
	"fmt"

	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
)

// CreateProjectOptions contains options for the project create command
type CreateProjectOptions struct {
	Name        string
	Kind        string
	Description string
	Upstream    string
	Threshold   string
	Timer       string
}

// CreateProjectAction creates a top-level project
func CreateProjectAction(ctx *runtime.Context, opts CreateProjectOptions) error {
	kind := opts.Kind
	if kind == "" {
		kind = project.KindFreeStyle
	}

	item, err := ctx.Registry.NewItem(kind, opts.Name)
	if err != nil {
		return err
	}

	switch item := item.(type) {
	case *project.FreeStyleProject:
		item.SetDescription(opts.Description)
		item.ReplaceTriggers(buildTriggers(opts.Upstream, opts.Threshold, opts.Timer, "")...)
		if err := item.Save(); err != nil {
			return err
		}
	case *project.MultiBranchProject:
		if opts.Upstream != "" || opts.Timer != "" {
			return fmt.Errorf("configure triggers of %s with 'branchwire template set'", item.FullName())
		}
		item.SetDescription(opts.Description)
		if err := item.Save(); err != nil {
			return err
		}
	}

	// New names can change how existing upstream lists resolve
	return ctx.Registry.RefreshAll()
}

// DeleteProjectAction deletes a top-level project
func DeleteProjectAction(ctx *runtime.Context, name string) error {
	if err := ctx.Registry.DeleteItem(name); err != nil {
		return err
	}
	return ctx.Registry.RefreshAll()
}

// SetDisabledAction enables or disables a project, multi-branch project or branch project
func SetDisabledAction(ctx *runtime.Context, fullName string, disabled bool) error {
	item, err := resolveItem(ctx, fullName)
	if err != nil {
		return err
	}

	setter, ok := item.(interface{ SetDisabled(bool) error })
	if !ok {
		return fmt.Errorf("%s cannot be disabled", fullName)
	}
	if err := setter.SetDisabled(disabled); err != nil {
		return err
	}

	state := "Enabled"
	if disabled {
		state = "Disabled"
	}
	ctx.Splog.Info("%s %s.", state, fullName)
	return nil
}

func buildTriggers(upstreamList, threshold, timer, scm string) []project.Trigger {
	var triggers []project.Trigger
	if timer != "" {
		triggers = append(triggers, &project.TimerTrigger{Spec: timer})
	}
	if scm != "" {
		triggers = append(triggers, &project.SCMTrigger{Spec: scm})
	}
	if upstreamList != "" {
		triggers = append(triggers, project.NewReverseBuildTrigger(upstreamList, project.Threshold(threshold)))
	}
	return triggers
}
