package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 10 * time.Second

// TokenSource supplies the current access token at send time. The token is
// never cached per call site: refresh may rotate it concurrently with other
// in-flight requests, so each request reads the live value.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client is the HTTP transport for the Expence backend. All endpoints are
// relative to <base>/api/v1 except the health check at <base>/health.
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 10 second request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithTokenSource attaches a bearer token source consulted on authorized calls.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a new API client for the given base URL
// (scheme://host[:port], without the /api/v1 suffix).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource installs the token source after construction. The auth layer
// owns the credential store and wires itself in once it exists.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// requestOptions carries the per-call knobs of doRequest.
type requestOptions struct {
	params       map[string]string
	headers      map[string]string
	rawResult    *[]byte
	authorized   bool
	absolutePath bool
}

// doRequest issues one HTTP request and normalizes every failure into *Error.
//
// body is JSON-encoded unless it is already an io.Reader (multipart bodies
// come in pre-encoded, with their content type in opts.headers). A successful
// response is JSON-decoded into result, or copied verbatim into
// opts.rawResult for non-JSON surfaces such as CSV export.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, result any, opts requestOptions) error {
	u := c.baseURL + "/api/v1" + endpoint
	if opts.absolutePath {
		u = c.baseURL + endpoint
	}
	if len(opts.params) > 0 {
		q := url.Values{}
		for k, v := range opts.params {
			q.Set(k, v)
		}
		u += "?" + q.Encode()
	}

	var bodyReader io.Reader
	var debugBody []byte
	contentType := ""
	switch b := body.(type) {
	case nil:
	case io.Reader:
		// streaming bodies (multipart uploads) are not captured for logging
		bodyReader = b
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("failed to marshal request body: %v", err), Status: 0}
		}
		bodyReader = bytes.NewReader(jsonData)
		debugBody = jsonData
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return &Error{Message: fmt.Sprintf("failed to create request: %v", err), Status: 0}
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	if opts.authorized && c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return &Error{Message: fmt.Sprintf("no access token: %v", err), Status: 0}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", method, "url", u, "body", string(debugBody))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Warn("api request timed out", "method", method, "url", u)
			return newTimeoutError()
		}
		c.logger.Warn("api request failed", "method", method, "url", u, "error", err)
		return newNetworkError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return newTimeoutError()
		}
		return newNetworkError(fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug("api response", "method", method, "url", u, "status", resp.StatusCode, "body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, resp.Header.Get("Content-Type"), respBody)
	}

	if opts.rawResult != nil {
		*opts.rawResult = respBody
		return nil
	}
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{
				Message: fmt.Sprintf("failed to decode response: %v", err),
				Status:  0,
				Body:    json.RawMessage(respBody),
			}
		}
	}
	return nil
}

// isTimeout reports whether err is a deadline or client-timeout failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func isJSONContentType(ct string) bool {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
