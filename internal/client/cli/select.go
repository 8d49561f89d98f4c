package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Vivekdembla/pdf-frontend/internal/client/pdfx"
	"github.com/Vivekdembla/pdf-frontend/internal/common"
)

// Select is the file-picking collaborator: it enforces the PDF-only
// constraint (extension plus a local content check) before the file is
// offered to the workflow. The controller itself never inspects content.
func (a *App) Select(ctx context.Context, path string) error {
	if !pdfx.HasPDFExtension(path) {
		fmt.Fprintln(a.out, "Only .pdf files can be selected")
		return common.ErrNotAPDF
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read file:", err)
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := pdfx.Validate(content); err != nil {
		fmt.Fprintln(a.out, "Not a valid PDF:", err)
		return err
	}

	a.ctrl.SelectFile(filepath.Base(path), content)
	a.log.Info(ctx, "file selected", "file", filepath.Base(path), "size", len(content))
	fmt.Fprintf(a.out, "Selected %s (%d bytes), type 'upload' to continue\n", filepath.Base(path), len(content))
	return nil
}
