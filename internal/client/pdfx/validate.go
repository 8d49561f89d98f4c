// Package pdfx performs a local sanity check on a picked file before it is
// offered to the workflow. The template service does the real parsing; this
// check only exists so an obviously wrong file is rejected without a round
// trip to the server.
package pdfx

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Vivekdembla/pdf-frontend/internal/common"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var pdfMagic = []byte("%PDF-")

// HasPDFExtension reports whether name ends in ".pdf", case-insensitively.
func HasPDFExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Validate checks that content is a readable PDF. It sniffs the header first
// for a cheap early exit, then lets pdfcpu read the cross-reference structure
// in relaxed mode and verify the page count. All failures map onto
// common.ErrNotAPDF.
func Validate(content []byte) error {
	if !bytes.HasPrefix(content, pdfMagic) {
		return common.ErrNotAPDF
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(content), conf)
	if err != nil {
		return fmt.Errorf("%w: %s", common.ErrNotAPDF, err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return fmt.Errorf("%w: %s", common.ErrNotAPDF, err)
	}

	return nil
}
