package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vivekdembla/pdf-frontend/internal/common"
)

// Generate triggers document generation. The action is only offered when the
// preconditions hold; instead of a bare rejection the user is told exactly
// what is still missing.
func (a *App) Generate(ctx context.Context) error {
	if !a.ctrl.CanGenerate() {
		switch {
		case a.ctrl.Busy():
			fmt.Fprintln(a.out, "Another operation is still running")
			return common.ErrBusy
		case a.ctrl.TemplateRef() == "":
			fmt.Fprintln(a.out, "No template uploaded yet")
			return common.ErrNoTemplate
		default:
			var missing []string
			for _, name := range a.ctrl.Placeholders() {
				if value, _ := a.ctrl.Field(name); value == "" {
					missing = append(missing, name)
				}
			}
			fmt.Fprintf(a.out, "Still empty: %s\n", strings.Join(missing, ", "))
			return common.ErrFieldsIncomplete
		}
	}

	if err := a.ctrl.Generate(ctx); err != nil {
		fmt.Fprintln(a.out, "Generation failed:", err)
		return err
	}

	fmt.Fprintln(a.out, "Document ready, type 'download' to save it")
	return nil
}
