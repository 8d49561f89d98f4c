package cli

import (
	"context"
	"fmt"
)

func (a *App) Upload(ctx context.Context) error {
	if err := a.ctrl.Upload(ctx); err != nil {
		fmt.Fprintln(a.out, "Upload failed:", err)
		return err
	}

	names := a.ctrl.Placeholders()
	if len(names) == 0 {
		fmt.Fprintln(a.out, "Template uploaded, no placeholders found, type 'generate' to continue")
		return nil
	}

	fmt.Fprintf(a.out, "Template uploaded, %d placeholder(s):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(a.out, "  - %s\n", name)
	}
	fmt.Fprintln(a.out, "Fill them with 'fill' or 'set <name> <value>'")
	return nil
}
