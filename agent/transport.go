package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transport delivers one batch. Implementations must not retry internally:
// the buffer's fallback loop decides what happens after a failure, and the
// pipeline as a whole is fire-and-forget.
type Transport interface {
	Send(batch Batch) error
}

type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// HTTPTransport posts batches as JSON to a single endpoint. The client
// timeout is short on purpose: a slow collector should fall through to the
// next candidate, not stall a page that is unloading.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

func NewHTTPTransport(endpoint string) *HTTPTransport {
	return &HTTPTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 3 * time.Second},
	}
}

func (t *HTTPTransport) Send(batch Batch) error {
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal batch: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{Status: resp.StatusCode}
	}
	return nil
}
