package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"evalkit/internal/platform/config"
)

type noopExporter struct{}

func (noopExporter) Export(ctx context.Context, sub Submission) error {
	return nil
}

type httpExporter struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewExporter returns the CRM export client, or a noop when no endpoint is
// configured so local setups work without the collaborator.
func NewExporter(cfg config.Config) Exporter {
	if cfg.ContactExportURL == "" {
		return noopExporter{}
	}
	return &httpExporter{
		endpoint: cfg.ContactExportURL,
		apiKey:   cfg.ContactExportAPIKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Export posts the submission as JSON. Non-2xx responses and transport
// failures surface as *ExternalServiceError; there is no retry here, that
// is the collaborator's concern.
func (e *httpExporter) Export(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return &ExternalServiceError{Op: "contact export", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return &ExternalServiceError{Op: "contact export", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("api-key", e.apiKey)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return &ExternalServiceError{Op: "contact export", Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ExternalServiceError{Op: "contact export", Status: resp.StatusCode}
	}
	return nil
}
