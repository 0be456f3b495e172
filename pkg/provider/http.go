package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// httpCore is the shared REST plumbing for the HTTP-backed adapters.
// It owns request/response transport and status-to-taxonomy mapping;
// payload shapes stay in the individual adapters.
type httpCore struct {
	name    string
	baseURL string
	client  *http.Client
}

func newHTTPCore(name, baseURL string) httpCore {
	return httpCore{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// postJSON sends payload to path and decodes the response body into out.
// A DefaultRequestTimeout is applied when ctx has no earlier deadline.
func (c *httpCore) postJSON(ctx context.Context, path string, headers map[string]string, payload, out any) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultRequestTimeout)
		defer cancel()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return WrapError(CodeInvalidRequest, c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return WrapError(CodeInvalidRequest, c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.mapTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return WrapError(CodeProviderUnavailable, c.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return c.mapStatusError(resp.StatusCode, resp.Header, respBody)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return WrapError(CodeProviderUnavailable, c.name,
			fmt.Errorf("malformed response body: %w", err))
	}
	return nil
}

// mapTransportError maps connection-level failures. Deadline and
// cancellation are distinguished so the gateway never retries a
// user-initiated cancel.
func (c *httpCore) mapTransportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return WrapError(CodeTimeout, c.name, err)
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		return WrapError(CodeCancelled, c.name, err)
	default:
		return WrapError(CodeProviderUnavailable, c.name, err)
	}
}

// mapStatusError maps HTTP status codes to the closed taxonomy.
func (c *httpCore) mapStatusError(status int, header http.Header, body []byte) error {
	msg := compactBody(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return NewError(CodeUnauthorized, c.name, msg)
	case status == http.StatusTooManyRequests:
		e := NewError(CodeRateLimited, c.name, msg)
		e.RetryAfter = parseRetryAfter(header.Get("Retry-After"))
		return e
	case status == http.StatusPaymentRequired || isQuotaBody(body):
		return NewError(CodeQuotaExceeded, c.name, msg)
	case status >= 500:
		return NewError(CodeProviderUnavailable, c.name, fmt.Sprintf("status %d: %s", status, msg))
	case status >= 400:
		return NewError(CodeInvalidRequest, c.name, fmt.Sprintf("status %d: %s", status, msg))
	default:
		return NewError(CodeProviderUnavailable, c.name, fmt.Sprintf("unexpected status %d", status))
	}
}

// parseRetryAfter handles the delta-seconds form; the HTTP-date form is
// rare enough on LLM APIs to ignore.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// isQuotaBody sniffs the quota-exhausted shape some backends report with
// a 429 or 400 status instead of a dedicated code.
func isQuotaBody(body []byte) bool {
	s := strings.ToLower(string(body))
	return strings.Contains(s, "insufficient_quota") ||
		strings.Contains(s, "quota_exceeded") ||
		strings.Contains(s, "billing")
}

func compactBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 300 {
		s = s[:300] + "…"
	}
	return s
}
