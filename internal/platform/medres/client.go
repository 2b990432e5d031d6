// Package medres wraps the external reservation backend (base path
// /api/medres). Every adapter in the modules tree goes through this client so
// the error taxonomy and payload decoding stay in one place.
package medres

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"medresFront/internal/shared/normalization"
)

const basePath = "/api/medres"

// Client wraps http.Client with base URL handling so adapters avoid repeating
// request boilerplate.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration, client *http.Client) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = "http://localhost:4001"
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	} else if timeout > 0 {
		client.Timeout = timeout
	}
	return &Client{baseURL: trimmed, client: client}
}

// Do performs a JSON request against the medres API and returns the decoded
// payload. body is JSON-encoded when non-nil; token is attached as a bearer
// header when non-empty. A 204 reply yields a nil payload.
func (c *Client) Do(ctx context.Context, method, endpoint, token string, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	url := c.baseURL + basePath + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		req.Header.Set("Authorization", "Bearer "+trimmed)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var payload any
	if len(raw) > 0 {
		// Tolera cuerpos no-JSON: quedan como texto plano.
		if err := json.Unmarshal(raw, &payload); err != nil {
			payload = string(raw)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, normalizeFailure(resp.StatusCode, payload)
	}
	return payload, nil
}

// normalizeFailure folds non-2xx replies into the error taxonomy: structured
// message/error bodies become rejections carrying the backend text verbatim,
// 404s become ErrNotFound, anything else is a transport-level failure.
func normalizeFailure(status int, payload any) error {
	message := ""
	if container := normalization.MapFromPayload(payload); container != nil {
		message = normalization.AsString(container["message"])
		if message == "" {
			message = normalization.AsString(container["error"])
		}
	}
	if status == http.StatusNotFound {
		if message != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, message)
		}
		return ErrNotFound
	}
	if message != "" {
		return &RejectionError{StatusCode: status, Message: message}
	}
	return fmt.Errorf("%w: status %d", ErrTransport, status)
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}
