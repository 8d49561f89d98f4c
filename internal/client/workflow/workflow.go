// Package workflow implements the template fill workflow: pick a PDF, upload
// it, fill one value per placeholder, generate the document, download it.
//
// The Controller owns every piece of workflow state exclusively. The UI layer
// reads state through accessors and moves it forward through the operations;
// nothing else mutates it. All methods must be called from the single UI
// goroutine; the busy flag serializes the two remote operations, it is not a
// lock.
package workflow

import (
	"context"

	"github.com/Vivekdembla/pdf-frontend/internal/client/api"
	"github.com/Vivekdembla/pdf-frontend/internal/common"
	"github.com/Vivekdembla/pdf-frontend/internal/logging"
)

// State identifies the stable state the workflow is in. An error is not a
// state of its own: it is an attribute attached to whichever stable state the
// failed operation returned to.
type State string

const (
	// StateIdle: nothing selected yet.
	StateIdle State = "idle"
	// StateFileSelected: a PDF is picked and ready to upload.
	StateFileSelected State = "file_selected"
	// StateTemplateReady: a template session exists; fields can be edited,
	// and once complete a document can be generated.
	StateTemplateReady State = "template_ready"
)

type sourceFile struct {
	name    string
	content []byte
}

// Controller sequences file selection, template upload, field editing,
// document generation and download consumption.
type Controller struct {
	api api.Client
	log logging.Logger

	file         *sourceFile
	templateRef  string
	placeholders []string
	fields       map[string]string
	downloadRef  string
	busy         bool
	lastErr      string
}

func New(apiClient api.Client, log logging.Logger) *Controller {
	return &Controller{api: apiClient, log: log}
}

// SelectFile replaces any previously selected file and clears the outstanding
// error. Selecting a new file restarts the workflow: any template session,
// entered values and pending download are discarded. No I/O happens here; the
// caller (the file-picking collaborator) is responsible for only offering
// PDF files.
func (c *Controller) SelectFile(name string, content []byte) {
	c.file = &sourceFile{name: name, content: content}
	c.templateRef = ""
	c.placeholders = nil
	c.fields = nil
	c.downloadRef = ""
	c.lastErr = ""
}

// Upload sends the selected file to the template service. On success a fresh
// template session replaces any prior one: the placeholder list is taken from
// the response as-is (order preserved) and every field starts empty. Values
// never carry over between sessions, even for placeholder names both
// templates share. On failure the session and fields are left untouched and
// the error message is recorded.
func (c *Controller) Upload(ctx context.Context) error {
	if c.busy {
		return common.ErrBusy
	}
	if c.file == nil {
		return common.ErrNoFileSelected
	}

	c.busy = true
	defer func() { c.busy = false }()

	result, err := c.api.UploadTemplate(ctx, c.file.name, c.file.content)
	if err != nil {
		c.lastErr = err.Error()
		return err
	}

	c.templateRef = result.FilePath
	c.placeholders = append([]string(nil), result.Placeholders...)

	fields := make(map[string]string, len(c.placeholders))
	for _, name := range c.placeholders {
		fields[name] = ""
	}
	c.fields = fields

	// the session supersedes the source file
	c.file = nil
	c.downloadRef = ""
	c.lastErr = ""

	c.log.Info(ctx, "template session started", "template_ref", c.templateRef, "placeholders", len(c.placeholders))
	return nil
}

// SetField stores a value for an existing placeholder. Names outside the
// active session are rejected, never silently added: the UI only ever offers
// existing keys, so an unknown name is a programming error on the caller's
// side.
func (c *Controller) SetField(name, value string) error {
	if _, ok := c.fields[name]; !ok {
		return common.ErrUnknownField
	}
	c.fields[name] = value
	return nil
}

// Generate asks the service to substitute the entered values into the
// uploaded template. Preconditions: a session exists and every field is
// filled. On success the download reference replaces any prior one; on
// failure the error message is recorded and no reference is created or
// altered.
func (c *Controller) Generate(ctx context.Context) error {
	if c.busy {
		return common.ErrBusy
	}
	if c.templateRef == "" {
		return common.ErrNoTemplate
	}
	if !c.IsComplete() {
		return common.ErrFieldsIncomplete
	}

	c.busy = true
	defer func() { c.busy = false }()

	values := make(map[string]string, len(c.fields))
	for name, value := range c.fields {
		values[name] = value
	}

	ref, err := c.api.GenerateDocument(ctx, c.templateRef, values)
	if err != nil {
		c.lastErr = err.Error()
		return err
	}

	c.downloadRef = ref
	c.lastErr = ""

	c.log.Info(ctx, "document ready", "download_ref", ref)
	return nil
}

// ConsumeDownload hands out the download reference and clears it immediately.
// This is a "seen" marker tied to the user activating the download, not to
// the transfer completing: the reference is gone even if the subsequent fetch
// fails.
func (c *Controller) ConsumeDownload() (string, error) {
	if c.downloadRef == "" {
		return "", common.ErrNoDocument
	}
	ref := c.downloadRef
	c.downloadRef = ""
	return ref, nil
}

// IsComplete reports whether every placeholder has a non-empty value.
// Vacuously true for a template without placeholders.
func (c *Controller) IsComplete() bool {
	for _, value := range c.fields {
		if value == "" {
			return false
		}
	}
	return true
}

// CanGenerate reports whether the generate action should be offered.
func (c *Controller) CanGenerate() bool {
	return !c.busy && c.templateRef != "" && c.IsComplete()
}

// State derives the current stable state from the owned entities, so it can
// never drift from them.
func (c *Controller) State() State {
	switch {
	case c.templateRef != "":
		return StateTemplateReady
	case c.file != nil:
		return StateFileSelected
	default:
		return StateIdle
	}
}

func (c *Controller) Busy() bool { return c.busy }

// LastError returns the message of the most recent failed operation, or ""
// when the last operation succeeded.
func (c *Controller) LastError() string { return c.lastErr }

// FileName returns the display name of the selected file, or "" when none is
// selected (including after a successful upload).
func (c *Controller) FileName() string {
	if c.file == nil {
		return ""
	}
	return c.file.name
}

// FileContent returns the raw bytes of the selected file.
func (c *Controller) FileContent() []byte {
	if c.file == nil {
		return nil
	}
	return c.file.content
}

// TemplateRef returns the opaque server-side reference of the active session.
func (c *Controller) TemplateRef() string { return c.templateRef }

// Placeholders returns a copy of the session's placeholder names in
// declaration order.
func (c *Controller) Placeholders() []string {
	return append([]string(nil), c.placeholders...)
}

// Fields returns a copy of the current placeholder values.
func (c *Controller) Fields() map[string]string {
	out := make(map[string]string, len(c.fields))
	for name, value := range c.fields {
		out[name] = value
	}
	return out
}

// Field returns the value of a single placeholder and whether it exists.
func (c *Controller) Field(name string) (string, bool) {
	value, ok := c.fields[name]
	return value, ok
}

// HasDocument reports whether a generated document is awaiting download.
func (c *Controller) HasDocument() bool { return c.downloadRef != "" }

// DownloadRef returns the pending download reference without consuming it.
func (c *Controller) DownloadRef() string { return c.downloadRef }
