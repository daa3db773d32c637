package actions

import (
	"fmt"
	"strings"

	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
)

// TemplateSetOptions contains options for the template set command.
// The template's triggers and properties are rebuilt from these options as a
// whole; anything not given is removed.
type TemplateSetOptions struct {
	Container   string
	Description string
	Upstream    string
	Threshold   string
	Timer       string
	SCM         string
	NumToKeep   int
	DaysToKeep  int
	// Parameters are NAME=DEFAULT pairs
	Parameters []string
}

// TemplateSetAction replaces the template configuration of a multi-branch
// project and stamps it onto every branch
func TemplateSetAction(ctx *runtime.Context, opts TemplateSetOptions) error {
	c, err := resolveContainer(ctx, opts.Container)
	if err != nil {
		return err
	}

	props, err := buildProperties(opts)
	if err != nil {
		return err
	}
	triggers := buildTriggers(opts.Upstream, opts.Threshold, opts.Timer, opts.SCM)

	t, err := c.EnsureTemplate()
	if err != nil {
		return err
	}
	t.SetDescription(opts.Description)
	if err := c.SetTemplateConfig(triggers, props); err != nil {
		return err
	}

	ctx.Splog.Info("Updated template of %s (%d branches).", c.FullName(), len(c.Branches()))
	return nil
}

func buildProperties(opts TemplateSetOptions) ([]project.JobProperty, error) {
	var props []project.JobProperty
	if len(opts.Parameters) > 0 {
		params := &project.ParametersProperty{}
		for _, raw := range opts.Parameters {
			name, def, _ := strings.Cut(raw, "=")
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, fmt.Errorf("invalid parameter %q: expected NAME=DEFAULT", raw)
			}
			params.Parameters = append(params.Parameters, project.Parameter{Name: name, Default: def})
		}
		props = append(props, params)
	}
	if opts.NumToKeep > 0 || opts.DaysToKeep > 0 {
		props = append(props, &project.BuildDiscarderProperty{NumToKeep: opts.NumToKeep, DaysToKeep: opts.DaysToKeep})
	}
	return props, nil
}
