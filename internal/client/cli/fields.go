package cli

import (
	"context"
	"fmt"

	"github.com/Vivekdembla/pdf-frontend/internal/common"
)

// Fields lists the placeholders of the active session in declaration order
// with their current values.
func (a *App) Fields(ctx context.Context) error {
	names := a.ctrl.Placeholders()
	if a.ctrl.TemplateRef() == "" {
		fmt.Fprintln(a.out, "No template uploaded yet")
		return common.ErrNoTemplate
	}
	if len(names) == 0 {
		fmt.Fprintln(a.out, "The template has no placeholders")
		return nil
	}

	for _, name := range names {
		value, _ := a.ctrl.Field(name)
		if value == "" {
			value = "<empty>"
		}
		fmt.Fprintf(a.out, "  %s = %s\n", name, value)
	}
	return nil
}

// Set stores a single placeholder value.
func (a *App) Set(ctx context.Context, name, value string) error {
	if err := a.ctrl.SetField(name, value); err != nil {
		fmt.Fprintf(a.out, "No such placeholder: %s\n", name)
		return err
	}
	if a.ctrl.IsComplete() {
		fmt.Fprintln(a.out, "All placeholders filled, type 'generate' to continue")
	}
	return nil
}

// Fill walks through every placeholder, prompting for a value with the
// current one as the default.
func (a *App) Fill(ctx context.Context) error {
	names := a.ctrl.Placeholders()
	if a.ctrl.TemplateRef() == "" {
		fmt.Fprintln(a.out, "No template uploaded yet")
		return common.ErrNoTemplate
	}
	if len(names) == 0 {
		fmt.Fprintln(a.out, "The template has no placeholders")
		return nil
	}

	for _, name := range names {
		current, _ := a.ctrl.Field(name)
		value, err := a.prompter.Input(name, current)
		if err != nil {
			fmt.Fprintln(a.out, "Input aborted:", err)
			return err
		}
		if err := a.ctrl.SetField(name, value); err != nil {
			return err
		}
	}

	if a.ctrl.IsComplete() {
		fmt.Fprintln(a.out, "All placeholders filled, type 'generate' to continue")
	} else {
		fmt.Fprintln(a.out, "Some placeholders are still empty")
	}
	return nil
}
