package cli

import (
	"context"
	"fmt"
	"path"

	"github.com/Vivekdembla/pdf-frontend/internal/filex"
)

// Download consumes the pending download reference, fetches the document and
// writes it into the configured download directory. The reference is consumed
// at activation: if the fetch fails afterwards, a fresh 'generate' is needed.
func (a *App) Download(ctx context.Context) error {
	ref, err := a.ctrl.ConsumeDownload()
	if err != nil {
		fmt.Fprintln(a.out, "Nothing to download, run 'generate' first")
		return err
	}

	data, err := a.api.FetchDocument(ctx, ref)
	if err != nil {
		fmt.Fprintln(a.out, "Download failed:", err)
		return err
	}

	name := path.Base(ref)
	if name == "." || name == "/" || name == "" {
		name = "document.pdf"
	}

	saved, err := filex.WriteTo(a.config.DownloadDir, name, data)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot save document:", err)
		return err
	}

	a.log.Info(ctx, "document saved", "path", saved, "size", len(data))
	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", saved, len(data))
	return nil
}
