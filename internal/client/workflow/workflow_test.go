package workflow

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vivekdembla/pdf-frontend/internal/client/api"
	"github.com/Vivekdembla/pdf-frontend/internal/common"
	"github.com/Vivekdembla/pdf-frontend/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a scriptable api.Client.
type fakeAPI struct {
	uploadResult *api.UploadResult
	uploadErr    error
	uploads      int

	generateRef string
	generateErr error
	generates   int

	lastFilename string
	lastContent  []byte
	lastValues   map[string]string
}

func (f *fakeAPI) UploadTemplate(_ context.Context, filename string, content []byte) (*api.UploadResult, error) {
	f.uploads++
	f.lastFilename = filename
	f.lastContent = content
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.uploadResult, nil
}

func (f *fakeAPI) GenerateDocument(_ context.Context, _ string, values map[string]string) (string, error) {
	f.generates++
	f.lastValues = values
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generateRef, nil
}

func (f *fakeAPI) FetchDocument(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newController(f *fakeAPI) *Controller {
	return New(f, testLogger())
}

func TestController_StartsIdle(t *testing.T) {
	c := newController(&fakeAPI{})

	assert.Equal(t, StateIdle, c.State())
	assert.False(t, c.Busy())
	assert.Empty(t, c.LastError())
	assert.False(t, c.CanGenerate())
}

func TestSelectFile_ReplacesFileAndClearsError(t *testing.T) {
	f := &fakeAPI{uploadErr: common.ErrUploadFailed}
	c := newController(f)

	c.SelectFile("a.pdf", []byte("aaa"))
	require.Error(t, c.Upload(context.Background()))
	require.NotEmpty(t, c.LastError())

	c.SelectFile("b.pdf", []byte("bbb"))

	assert.Equal(t, StateFileSelected, c.State())
	assert.Equal(t, "b.pdf", c.FileName())
	assert.Equal(t, []byte("bbb"), c.FileContent())
	assert.Empty(t, c.LastError(), "selecting a file clears the error")
}

func TestUpload_NoFileSelected_FailsFast(t *testing.T) {
	f := &fakeAPI{}
	c := newController(f)

	err := c.Upload(context.Background())

	require.ErrorIs(t, err, common.ErrNoFileSelected)
	assert.Zero(t, f.uploads, "no request may be issued without a file")
}

func TestUpload_Success_CreatesSessionAndEmptyFields(t *testing.T) {
	f := &fakeAPI{uploadResult: &api.UploadResult{
		FilePath:     "/tmp/t1",
		Placeholders: []string{"name", "amount"},
	}}
	c := newController(f)

	c.SelectFile("invoice.pdf", []byte("%PDF-1.7"))
	require.NoError(t, c.Upload(context.Background()))

	assert.Equal(t, StateTemplateReady, c.State())
	assert.Equal(t, "/tmp/t1", c.TemplateRef())
	assert.Equal(t, []string{"name", "amount"}, c.Placeholders())
	assert.Equal(t, map[string]string{"name": "", "amount": ""}, c.Fields())
	assert.Empty(t, c.FileName(), "the session supersedes the source file")
	assert.False(t, c.Busy())
	assert.Empty(t, c.LastError())

	assert.Equal(t, "invoice.pdf", f.lastFilename)
	assert.Equal(t, []byte("%PDF-1.7"), f.lastContent)
}

func TestUpload_Failure_LeavesStateUnchanged(t *testing.T) {
	f := &fakeAPI{uploadErr: common.ErrUploadFailed}
	c := newController(f)

	c.SelectFile("invoice.pdf", []byte("%PDF-1.7"))
	err := c.Upload(context.Background())

	require.ErrorIs(t, err, common.ErrUploadFailed)
	assert.Equal(t, StateFileSelected, c.State(), "failure returns to the last stable state")
	assert.Equal(t, "invoice.pdf", c.FileName(), "the file stays selected for a retry")
	assert.Empty(t, c.TemplateRef())
	assert.Empty(t, c.Fields())
	assert.NotEmpty(t, c.LastError())
	assert.False(t, c.Busy(), "busy must clear on the failure path")
}

func TestUpload_EmptyPlaceholderList(t *testing.T) {
	f := &fakeAPI{uploadResult: &api.UploadResult{FilePath: "/tmp/t2", Placeholders: []string{}}}
	c := newController(f)

	c.SelectFile("blank.pdf", []byte("%PDF-1.7"))
	require.NoError(t, c.Upload(context.Background()))

	assert.Empty(t, c.Placeholders())
	assert.Empty(t, c.Fields())
	assert.True(t, c.IsComplete(), "no placeholders means nothing left to fill")
	assert.True(t, c.CanGenerate())
}

func TestSecondUpload_ReplacesSessionDiscardingValues(t *testing.T) {
	f := &fakeAPI{uploadResult: &api.UploadResult{
		FilePath:     "/tmp/t1",
		Placeholders: []string{"name", "amount"},
	}}
	c := newController(f)

	c.SelectFile("first.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))
	require.NoError(t, c.SetField("name", "Alice"))
	require.NoError(t, c.SetField("amount", "100"))

	// new template shares the "name" placeholder; its value must not carry over
	f.uploadResult = &api.UploadResult{FilePath: "/tmp/t2", Placeholders: []string{"name", "date"}}
	c.SelectFile("second.pdf", []byte("2"))
	require.NoError(t, c.Upload(context.Background()))

	assert.Equal(t, "/tmp/t2", c.TemplateRef())
	assert.Equal(t, []string{"name", "date"}, c.Placeholders())
	assert.Equal(t, map[string]string{"name": "", "date": ""}, c.Fields())
}

func TestSetField_UnknownNameRejected(t *testing.T) {
	f := &fakeAPI{uploadResult: &api.UploadResult{FilePath: "/tmp/t1", Placeholders: []string{"name"}}}
	c := newController(f)

	err := c.SetField("name", "x")
	require.ErrorIs(t, err, common.ErrUnknownField, "no session, no keys")

	c.SelectFile("a.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))

	err = c.SetField("bogus", "x")
	require.ErrorIs(t, err, common.ErrUnknownField)
	assert.Equal(t, map[string]string{"name": ""}, c.Fields(), "unknown names never create keys")
}

func TestIsComplete_TracksEdits(t *testing.T) {
	f := &fakeAPI{uploadResult: &api.UploadResult{FilePath: "/tmp/t1", Placeholders: []string{"name", "amount"}}}
	c := newController(f)

	c.SelectFile("a.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))

	assert.False(t, c.IsComplete())

	require.NoError(t, c.SetField("name", "Alice"))
	assert.False(t, c.IsComplete())

	require.NoError(t, c.SetField("amount", "100"))
	assert.True(t, c.IsComplete())

	// re-emptying a filled field flips it back
	require.NoError(t, c.SetField("name", ""))
	assert.False(t, c.IsComplete())
	assert.False(t, c.CanGenerate())
}

func TestGenerate_Preconditions(t *testing.T) {
	f := &fakeAPI{uploadResult: &api.UploadResult{FilePath: "/tmp/t1", Placeholders: []string{"name"}}}
	c := newController(f)

	err := c.Generate(context.Background())
	require.ErrorIs(t, err, common.ErrNoTemplate)

	c.SelectFile("a.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))

	err = c.Generate(context.Background())
	require.ErrorIs(t, err, common.ErrFieldsIncomplete)
	assert.Zero(t, f.generates, "no request may be issued with unfilled placeholders")
}

func TestGenerate_SuccessAndConsumeDownload(t *testing.T) {
	f := &fakeAPI{
		uploadResult: &api.UploadResult{FilePath: "/tmp/t1", Placeholders: []string{"name", "amount"}},
		generateRef:  "/out/d1.pdf",
	}
	c := newController(f)

	c.SelectFile("invoice.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))
	require.NoError(t, c.SetField("name", "Alice"))
	require.NoError(t, c.SetField("amount", "100"))
	require.True(t, c.CanGenerate())

	require.NoError(t, c.Generate(context.Background()))

	assert.True(t, c.HasDocument())
	assert.Equal(t, "/out/d1.pdf", c.DownloadRef())
	assert.Equal(t, map[string]string{"name": "Alice", "amount": "100"}, f.lastValues)
	assert.Equal(t, StateTemplateReady, c.State())

	ref, err := c.ConsumeDownload()
	require.NoError(t, err)
	assert.Equal(t, "/out/d1.pdf", ref)
	assert.False(t, c.HasDocument(), "consumption clears the reference immediately")

	_, err = c.ConsumeDownload()
	require.ErrorIs(t, err, common.ErrNoDocument, "the reference is single-use")
}

func TestGenerate_Failure_KeepsResultAbsent(t *testing.T) {
	f := &fakeAPI{
		uploadResult: &api.UploadResult{FilePath: "/tmp/t1", Placeholders: []string{"name"}},
		generateErr:  common.ErrGenerationFailed,
	}
	c := newController(f)

	c.SelectFile("a.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))
	require.NoError(t, c.SetField("name", "Alice"))

	err := c.Generate(context.Background())

	require.ErrorIs(t, err, common.ErrGenerationFailed)
	assert.False(t, c.HasDocument())
	assert.Equal(t, StateTemplateReady, c.State(), "failure returns to the last stable state")
	assert.NotEmpty(t, c.LastError())
	assert.False(t, c.Busy())

	// the user can retry without re-entering anything
	f.generateErr = nil
	f.generateRef = "/out/d2.pdf"
	require.NoError(t, c.Generate(context.Background()))
	assert.Equal(t, "/out/d2.pdf", c.DownloadRef())
}

func TestGenerate_OverwritesPriorResult(t *testing.T) {
	f := &fakeAPI{
		uploadResult: &api.UploadResult{FilePath: "/tmp/t1", Placeholders: []string{"name"}},
		generateRef:  "/out/d1.pdf",
	}
	c := newController(f)

	c.SelectFile("a.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))
	require.NoError(t, c.SetField("name", "Alice"))
	require.NoError(t, c.Generate(context.Background()))

	f.generateRef = "/out/d2.pdf"
	require.NoError(t, c.Generate(context.Background()))

	assert.Equal(t, "/out/d2.pdf", c.DownloadRef())
}

func TestSelectFile_FromTemplateReady_DiscardsEverything(t *testing.T) {
	f := &fakeAPI{
		uploadResult: &api.UploadResult{FilePath: "/tmp/t1", Placeholders: []string{"name"}},
		generateRef:  "/out/d1.pdf",
	}
	c := newController(f)

	c.SelectFile("a.pdf", []byte("1"))
	require.NoError(t, c.Upload(context.Background()))
	require.NoError(t, c.SetField("name", "Alice"))
	require.NoError(t, c.Generate(context.Background()))
	require.True(t, c.HasDocument())

	c.SelectFile("b.pdf", []byte("2"))

	assert.Equal(t, StateFileSelected, c.State())
	assert.Empty(t, c.TemplateRef())
	assert.Empty(t, c.Fields())
	assert.False(t, c.HasDocument())
}

// The end-to-end scenario from the design notes, run against a real HTTP
// service double instead of a fake client.
func TestWorkflow_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/upload":
			io.WriteString(w, `{"filePath":"/tmp/t1","placeholders":["name","amount"]}`)
		case "/generate":
			io.WriteString(w, `{"downloadPath":"/out/d1.pdf"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(api.NewHTTPClient(srv.URL, 5*time.Second, testLogger()), testLogger())
	ctx := context.Background()

	c.SelectFile("invoice.pdf", []byte("%PDF-1.7 fake"))
	require.NoError(t, c.Upload(ctx))
	require.Equal(t, map[string]string{"name": "", "amount": ""}, c.Fields())

	require.NoError(t, c.SetField("name", "Alice"))
	require.NoError(t, c.SetField("amount", "100"))
	require.True(t, c.IsComplete())

	require.NoError(t, c.Generate(ctx))
	require.Equal(t, "/out/d1.pdf", c.DownloadRef())

	ref, err := c.ConsumeDownload()
	require.NoError(t, err)
	require.Equal(t, "/out/d1.pdf", ref)
	require.False(t, c.HasDocument())
}

// Malformed upload response scenario: a placeholder list that is not a list
// normalizes to an empty session without raising an error.
func TestWorkflow_MalformedPlaceholders_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"filePath":"/tmp/t2","placeholders":"not-a-list"}`)
	}))
	defer srv.Close()

	c := New(api.NewHTTPClient(srv.URL, 5*time.Second, testLogger()), testLogger())

	c.SelectFile("odd.pdf", []byte("%PDF-1.7"))
	require.NoError(t, c.Upload(context.Background()))

	assert.Equal(t, StateTemplateReady, c.State())
	assert.Empty(t, c.Placeholders())
	assert.Empty(t, c.Fields())
	assert.Empty(t, c.LastError())
}
