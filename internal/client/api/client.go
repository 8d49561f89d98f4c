// Package api talks to the external template-processing service over HTTP.
//
// The service exposes two operations: uploading a PDF template (which returns
// a server-side file reference plus the placeholder names found in it) and
// generating a filled document from a reference and a set of values. Both are
// plain request/response calls, no streaming.
package api

import "context"

// UploadResult is the decoded response of a successful template upload.
//
// Placeholders holds the names declared by the service, in declaration order.
// It is never nil: a missing or malformed list in the response is normalized
// to an empty slice at the decoding boundary (see decodePlaceholders).
type UploadResult struct {
	FilePath     string
	Placeholders []string
}

// Client defines the remote operations the workflow needs.
type Client interface {
	// UploadTemplate sends the raw PDF bytes as a multipart upload and
	// returns the server-side reference and placeholder list.
	UploadTemplate(ctx context.Context, filename string, content []byte) (*UploadResult, error)

	// GenerateDocument asks the service to substitute values into the
	// previously uploaded template and returns the download reference.
	GenerateDocument(ctx context.Context, filePath string, values map[string]string) (string, error)

	// FetchDocument retrieves the bytes of a generated document by its
	// download reference.
	FetchDocument(ctx context.Context, downloadPath string) ([]byte, error)
}
