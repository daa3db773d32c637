package actions

import (
	"fmt"
	"io"
	"net/http"

	bwerrors "branchwire.dev/branchwire/internal/errors"
	"branchwire.dev/branchwire/internal/project"
	"branchwire.dev/branchwire/internal/runtime"
)

// ConfigShowAction writes the configuration document of an item to w
func ConfigShowAction(ctx *runtime.Context, fullName string, w io.Writer) error {
	item, err := resolveItem(ctx, fullName)
	if err != nil {
		return err
	}

	if b, ok := item.(*project.BranchProject); ok {
		return b.ConfigDocument(http.MethodGet, nil, w)
	}

	data, err := project.MarshalDocument(item.Document())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ConfigSubmitAction replaces the configuration of an item with the document
// read from r. Branch projects reject submissions.
func ConfigSubmitAction(ctx *runtime.Context, fullName string, r io.Reader) error {
	item, err := resolveItem(ctx, fullName)
	if err != nil {
		return err
	}

	if b, ok := item.(*project.BranchProject); ok {
		return b.ConfigDocument(http.MethodPost, r, io.Discard)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	doc, err := project.UnmarshalDocument(data)
	if err != nil {
		return err
	}

	switch item := item.(type) {
	case *project.FreeStyleProject:
		err = item.SubmitConfiguration(doc)
	case *project.MultiBranchProject:
		err = item.SubmitConfiguration(doc)
	default:
		err = bwerrors.NewUnsupportedOperationError("configuration submission", fullName, "")
	}
	if err != nil {
		return err
	}

	ctx.Splog.Info("Updated configuration of %s.", fullName)
	return ctx.Registry.RefreshAll()
}
