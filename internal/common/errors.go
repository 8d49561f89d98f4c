// Package common defines shared constants and sentinel errors used across
// the layers of the PDF template fill client. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Service-boundary errors. A transport failure or a non-2xx status on the
	// corresponding call maps uniformly onto one of these, regardless of the
	// response body.
	ErrUploadFailed     = errors.New("template upload failed")
	ErrGenerationFailed = errors.New("document generation failed")
	ErrDownloadFailed   = errors.New("document download failed")

	// Workflow precondition errors.
	ErrBusy             = errors.New("another operation is in progress")
	ErrNoFileSelected   = errors.New("no file selected")
	ErrNoTemplate       = errors.New("no template uploaded")
	ErrFieldsIncomplete = errors.New("not all placeholders are filled")
	ErrUnknownField     = errors.New("unknown placeholder")
	ErrNoDocument       = errors.New("no generated document available")

	// Selection errors.
	ErrNotAPDF = errors.New("file is not a valid PDF")
)
