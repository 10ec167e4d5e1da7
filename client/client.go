package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Kind classifies a failed CDISC Library call.
type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindRateLimited  Kind = "rate_limited"
	KindUpstream     Kind = "upstream_error"
	KindNetwork      Kind = "network_error"
)

// APIError carries the failure kind plus enough upstream detail to diagnose
// a call without retrying blindly.
type APIError struct {
	Kind    Kind
	Status  int // 0 when the failure happened before an HTTP response
	Message string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

type Config struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxBodySize int64
	RetryCount  int
	RetryDelay  time.Duration
	Logger      *slog.Logger
}

// Client is a thin shim over the CDISC Library REST API: it joins paths onto
// the base URL, attaches the api-key header, and maps HTTP failures onto the
// Kind taxonomy. It holds no mutable state and is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	maxBodySize int64
	retryCount  int
	retryDelay  time.Duration
	logger      *slog.Logger
}

const defaultMaxBodySize = 16 << 20

func New(config Config) *Client {
	maxBodySize := config.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = defaultMaxBodySize
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		apiKey:      config.APIKey,
		maxBodySize: maxBodySize,
		retryCount:  config.RetryCount,
		retryDelay:  config.RetryDelay,
		logger:      logger,
	}
}

// GetJSON issues a GET for path (absolute, starting with /mdr) and returns
// the decoded JSON body verbatim. Failed calls return an *APIError. Retries,
// when enabled, cover network errors and 5xx only; 4xx responses are final
// and 429 is surfaced immediately so the caller decides whether to wait.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values) (any, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	maxAttempts := c.retryCount + 1
	var lastErr *APIError

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &APIError{Kind: KindNetwork, Message: ctx.Err().Error()}
			case <-time.After(c.retryDelay):
			}
		}

		value, apiErr := c.doAttempt(ctx, requestURL)
		if apiErr == nil {
			return value, nil
		}

		lastErr = apiErr
		if !retryable(apiErr) {
			break
		}
	}

	return nil, lastErr
}

func retryable(e *APIError) bool {
	switch e.Kind {
	case KindNetwork:
		return true
	case KindUpstream:
		return e.Status >= 500
	}
	return false
}

func (c *Client) doAttempt(ctx context.Context, requestURL string) (any, *APIError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: fmt.Sprintf("creating request for %s: %s", requestURL, err)}
	}

	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Debug("request failed", "url", requestURL, "error", err)
		return nil, &APIError{Kind: KindNetwork, Message: describeNetworkError(err)}
	}

	body, readErr := readBody(resp, c.maxBodySize)
	if readErr != nil {
		return nil, readErr
	}

	c.logger.Debug("request completed", "url", requestURL, "status", resp.StatusCode, "bytes", len(body), "duration", duration)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp, body)
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, &APIError{
			Kind:    KindUpstream,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("undecodable response body: %s", err),
		}
	}
	return value, nil
}

func readBody(resp *http.Response, maxBodySize int64) ([]byte, *APIError) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	resp.Body.Close()
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: fmt.Sprintf("reading response body: %s", err)}
	}
	if int64(len(body)) > maxBodySize {
		// Truncated JSON would not decode, so an over-cap body is an
		// upstream error rather than a silently clipped success.
		return nil, &APIError{
			Kind:    KindUpstream,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("response body exceeds %d bytes", maxBodySize),
		}
	}
	return body, nil
}

func statusError(resp *http.Response, body []byte) *APIError {
	detail := upstreamMessage(body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &APIError{Kind: KindUnauthorized, Status: resp.StatusCode, Message: "CDISC Library rejected the API key: " + detail}
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{Kind: KindNotFound, Status: resp.StatusCode, Message: "no matching resource: " + detail}
	case resp.StatusCode == http.StatusTooManyRequests:
		msg := "rate limit exceeded"
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			msg += ", Retry-After: " + ra
		}
		return &APIError{Kind: KindRateLimited, Status: resp.StatusCode, Message: msg}
	}
	return &APIError{Kind: KindUpstream, Status: resp.StatusCode, Message: detail}
}

// upstreamMessage compresses an error body into a single short line.
const maxUpstreamMessage = 300

func upstreamMessage(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if s == "" {
		return "(empty body)"
	}
	if len(s) > maxUpstreamMessage {
		s = s[:maxUpstreamMessage] + "..."
	}
	return s
}

func describeNetworkError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request to CDISC Library timed out"
	}
	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return "request to CDISC Library timed out"
	}
	return err.Error()
}
