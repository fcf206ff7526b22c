package ocr

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

	"facturo/internal/config"
	"facturo/internal/port"
)

// Client implements port.TextRecognizer against a tesseract-server
// instance: a multipart POST carrying the image and an options JSON,
// answered with the tesseract stdout.
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a recognizer from the OCR config.
func NewClient(cfg *config.OCRConfig) *Client {
	return newClient(cfg, cfg.Endpoint)
}

// NewClientWithEndpoint creates a recognizer pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(cfg *config.OCRConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.OCRConfig, endpoint string) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type tesseractOptions struct {
	Languages []string `json:"languages"`
}

type tesseractResponse struct {
	Data struct {
		Stdout   string `json:"stdout"`
		Stderr   string `json:"stderr"`
		ExitCode int    `json:"exitCode"`
	} `json:"data"`
}

// Recognize sends one image for recognition with the given language spec.
func (c *Client) Recognize(ctx context.Context, in port.RecognizeInput) (string, error) {
	opts, err := json.Marshal(tesseractOptions{Languages: strings.Split(in.Languages, "+")})
	if err != nil {
		return "", fmt.Errorf("marshaling options: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("options", string(opts)); err != nil {
		return "", fmt.Errorf("writing options field: %w", err)
	}
	fw, err := mw.CreateFormFile("file", "document")
	if err != nil {
		return "", fmt.Errorf("creating file field: %w", err)
	}
	if _, err := fw.Write(in.Image); err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling tesseract server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tesseract server error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed tesseractResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if parsed.Data.ExitCode != 0 {
		return "", fmt.Errorf("tesseract exited with code %d: %s", parsed.Data.ExitCode, parsed.Data.Stderr)
	}
	return parsed.Data.Stdout, nil
}
