package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/universal-mcp/sentry/internal/common"
)

// maxResponseSize caps the response body to prevent OOM from unexpectedly
// large responses (event payloads and file downloads can be big). A body
// over the cap fails the exchange rather than relaying a truncated payload.
const maxResponseSize = 50 << 20 // 50MB

// Result is the outcome of a completed HTTP exchange with the Sentry API.
type Result struct {
	Status int
	Body   []byte
}

// Proxy issues authenticated HTTP requests against the Sentry API.
// Stateless after construction, so a single instance serves any number of
// concurrent invocations.
type Proxy struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *common.Logger
	maxBody    int64
}

// NewProxy creates a proxy targeting the given base URL. The bearer token is
// attached to every request; timeout bounds each outbound call.
func NewProxy(baseURL, token string, timeout time.Duration, logger *common.Logger) *Proxy {
	return &Proxy{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		maxBody: maxResponseSize,
	}
}

// BaseURL returns the configured base URL.
func (p *Proxy) BaseURL() string {
	return p.baseURL
}

// Do performs an HTTP request against the Sentry API. A non-nil body is
// JSON-encoded. A 2xx response returns a Result; a non-2xx response returns
// a RemoteError carrying status and body; a request that never completes
// (timeout, connection failure, cancellation) returns a TransportError.
func (p *Proxy) Do(ctx context.Context, method, path string, body interface{}) (*Result, error) {
	p.logger.Debug().Str("method", method).Str("path", path).Msg("sentry request")

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		p.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("sentry request failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// Read one byte past the cap so an over-limit body is detected rather
	// than silently truncated.
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody+1))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if int64(len(respBody)) > p.maxBody {
		p.logger.Error().Str("method", method).Str("path", path).Int64("limit_bytes", p.maxBody).Msg("response body over size limit")
		return nil, &TransportError{Err: fmt.Errorf("response body exceeds %d byte limit", p.maxBody)}
	}

	p.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("sentry response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteError{Status: resp.StatusCode, Body: respBody}
	}

	return &Result{Status: resp.StatusCode, Body: respBody}, nil
}
