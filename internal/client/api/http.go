package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Vivekdembla/pdf-frontend/internal/common"
	"github.com/Vivekdembla/pdf-frontend/internal/logging"
	"github.com/google/uuid"
)

const (
	uploadPath   = "/upload"
	generatePath = "/generate"

	requestIDHeader = "X-Request-Id"
)

// HTTPClient is the Client implementation backed by net/http.
//
// Every call runs under a per-request deadline derived from timeout, so a
// service that never responds cannot leave the caller waiting forever.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		timeout: timeout,
		log:     log,
	}
}

// uploadResponse keeps the placeholder list raw so malformed values can be
// normalized instead of failing the whole decode.
type uploadResponse struct {
	FilePath     string          `json:"filePath"`
	Placeholders json.RawMessage `json:"placeholders"`
}

type generateRequest struct {
	FilePath string            `json:"filePath"`
	Data     map[string]string `json:"data"`
}

type generateResponse struct {
	DownloadPath string `json:"downloadPath"`
}

// decodePlaceholders normalizes the placeholder list from the upload
// response. Anything that is not a JSON array of strings (absent, null,
// wrong type, mixed element types) yields an empty list. This leniency is
// deliberate and kept at the service boundary so the workflow layer only
// ever sees a well-formed ordered list.
func decodePlaceholders(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return []string{}
	}
	if names == nil {
		return []string{}
	}
	return names
}

func (c *HTTPClient) UploadTemplate(ctx context.Context, filename string, content []byte) (*UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, &body)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(requestIDHeader, requestID)

	log.Info(ctx, "uploading template", "file", filename, "size", len(content))

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error(ctx, "upload request failed", "error", err)
		return nil, fmt.Errorf("%w: %s", common.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		log.Error(ctx, "upload rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", common.ErrUploadFailed, resp.StatusCode)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		log.Error(ctx, "upload response unreadable", "error", err)
		return nil, fmt.Errorf("%w: decoding response: %s", common.ErrUploadFailed, err)
	}

	result := &UploadResult{
		FilePath:     ur.FilePath,
		Placeholders: decodePlaceholders(ur.Placeholders),
	}

	log.Info(ctx, "template uploaded", "file_path", result.FilePath, "placeholders", len(result.Placeholders))
	return result, nil
}

func (c *HTTPClient) GenerateDocument(ctx context.Context, filePath string, values map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID)

	payload, err := json.Marshal(generateRequest{FilePath: filePath, Data: values})
	if err != nil {
		return "", fmt.Errorf("encoding generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	log.Info(ctx, "generating document", "file_path", filePath, "fields", len(values))

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error(ctx, "generate request failed", "error", err)
		return "", fmt.Errorf("%w: %s", common.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		log.Error(ctx, "generation rejected", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d", common.ErrGenerationFailed, resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		log.Error(ctx, "generate response unreadable", "error", err)
		return "", fmt.Errorf("%w: decoding response: %s", common.ErrGenerationFailed, err)
	}

	log.Info(ctx, "document generated", "download_path", gr.DownloadPath)
	return gr.DownloadPath, nil
}

func (c *HTTPClient) FetchDocument(ctx context.Context, downloadPath string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	log := c.log.With("request_id", requestID)

	url := downloadPath
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = c.baseURL + "/" + strings.TrimLeft(downloadPath, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.hc.Do(req)
	if err != nil {
		log.Error(ctx, "download request failed", "error", err)
		return nil, fmt.Errorf("%w: %s", common.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		log.Error(ctx, "download rejected", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", common.ErrDownloadFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(ctx, "download body unreadable", "error", err)
		return nil, fmt.Errorf("%w: reading body: %s", common.ErrDownloadFailed, err)
	}

	log.Info(ctx, "document downloaded", "download_path", downloadPath, "size", len(data))
	return data, nil
}
