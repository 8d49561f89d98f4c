package cli

import (
	"context"
	"fmt"

	"github.com/Vivekdembla/pdf-frontend/internal/client/workflow"
)

// Status prints the full workflow state: the stable state, the selected file
// or session details, and the last error if any.
func (a *App) Status(ctx context.Context) error {
	fmt.Fprintf(a.out, "State: %s\n", a.ctrl.State())

	switch a.ctrl.State() {
	case workflow.StateIdle:
		fmt.Fprintln(a.out, "No file selected, start with 'select <path>'")

	case workflow.StateFileSelected:
		fmt.Fprintf(a.out, "Selected file: %s (%d bytes)\n", a.ctrl.FileName(), len(a.ctrl.FileContent()))

	case workflow.StateTemplateReady:
		fmt.Fprintf(a.out, "Template: %s\n", a.ctrl.TemplateRef())
		filled := 0
		for _, name := range a.ctrl.Placeholders() {
			if value, _ := a.ctrl.Field(name); value != "" {
				filled++
			}
		}
		fmt.Fprintf(a.out, "Placeholders filled: %d/%d\n", filled, len(a.ctrl.Placeholders()))
		if a.ctrl.HasDocument() {
			fmt.Fprintf(a.out, "Document ready: %s\n", a.ctrl.DownloadRef())
		}
	}

	if a.ctrl.LastError() != "" {
		fmt.Fprintf(a.out, "Last error: %s\n", a.ctrl.LastError())
	}
	return nil
}
