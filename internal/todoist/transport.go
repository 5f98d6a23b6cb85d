package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/teemow/todoist-mcp/internal/logging"
)

// DefaultBaseURL is the Todoist REST v2 endpoint.
const DefaultBaseURL = "https://api.todoist.com/rest/v2"

// requestIDHeader lets Todoist deduplicate a mutating request.
const requestIDHeader = "X-Request-Id"

// Options configures the shared connection used by Client and RawClient.
type Options struct {
	Token   string
	BaseURL string // Defaults to DefaultBaseURL

	// HTTPClient replaces the authenticated client, mostly for tests.
	// The bearer token is not applied to a caller supplied client.
	HTTPClient *http.Client

	// Logger receives one debug line per request. Defaults to slog.Default().
	Logger logging.Logger
}

// conn is the single authenticated round tripper shared by both clients.
type conn struct {
	http    *http.Client
	baseURL *url.URL
	logger  logging.Logger
}

func newConn(opts Options) (*conn, error) {
	if opts.HTTPClient == nil && opts.Token == "" {
		return nil, fmt.Errorf("todoist API token is required")
	}

	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", raw)
	}

	client := opts.HTTPClient
	if client == nil {
		client = newHTTPClient(opts.Token)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	return &conn{http: client, baseURL: base, logger: logger.With("component", "todoist")}, nil
}

// newHTTPClient returns a traced client that sends token as a bearer credential.
// No timeout is set; callers bound requests through their context.
func newHTTPClient(token string) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// endpoint resolves path against the base URL.
// path must already be escaped.
func (c *conn) endpoint(path string, query url.Values) string {
	u := c.baseURL.String() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// newRequest builds a request with an optional JSON body.
func (c *conn) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// send performs exactly one round trip and returns the body of a 2xx response.
func (c *conn) send(op string, req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	if req.Method != http.MethodGet && req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("todoist request failed",
			logging.KeyOperation, op,
			"method", req.Method,
			"path", req.URL.Path,
			logging.KeyError, err.Error())
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.logger.Debug("todoist request",
		logging.KeyOperation, op,
		"method", req.Method,
		"path", req.URL.Path,
		logging.KeyHTTPStatus, resp.StatusCode,
		logging.KeyDuration, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(op, resp, body)
	}
	return body, nil
}

// do sends a request and decodes a JSON response into out when out is non-nil.
func (c *conn) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	data, err := c.send(op, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}
