package gitea

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

	"github.com/ternarybob/arbor"
)

const (
	// APIBasePath is appended to the server URL for every request.
	APIBasePath = "/api/v1"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// TokenProvider supplies the current access token. An empty return means
// the request is sent unauthenticated.
type TokenProvider func() string

// Client executes Endpoints against a Gitea server and normalizes every
// failure into an *APIError. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	baseURL       string
	tokenProvider TokenProvider
	httpClient    *http.Client
	logger        arbor.ILogger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the given server URL. The /api/v1 prefix
// is appended here so endpoint paths stay server-relative.
func NewClient(serverURL string, tokenProvider TokenProvider, opts ...ClientOption) (*Client, error) {
	parsed, err := url.Parse(serverURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &APIError{Kind: KindInvalidRequestTarget, cause: err}
	}

	c := &Client{
		baseURL:       strings.TrimSuffix(serverURL, "/") + APIBasePath,
		tokenProvider: tokenProvider,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Do executes the endpoint and decodes the JSON response body into result.
// Pass a nil result to discard the body after status validation.
func (c *Client) Do(ctx context.Context, ep Endpoint, result any) error {
	req, err := c.buildRequest(ctx, ep)
	if err != nil {
		return err
	}
	return c.execute(req, result)
}

// DoNoContent executes the endpoint and validates the status code only.
func (c *Client) DoNoContent(ctx context.Context, ep Endpoint) error {
	return c.Do(ctx, ep, nil)
}

func (c *Client) buildRequest(ctx context.Context, ep Endpoint) (*http.Request, error) {
	reqURL, err := c.requestURL(ep)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if ep.Body != nil {
		encoded, err := json.Marshal(ep.Body)
		if err != nil {
			return nil, &APIError{Kind: KindInvalidRequestTarget, cause: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, reqURL, body)
	if err != nil {
		return nil, &APIError{Kind: KindInvalidRequestTarget, cause: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.setAuthHeader(req)

	return req, nil
}

// requestURL joins the base URL, endpoint path, and ordered query
// parameters. Parameters are encoded by hand so their order survives.
func (c *Client) requestURL(ep Endpoint) (string, error) {
	reqURL := c.baseURL + ep.Path
	if _, err := url.Parse(reqURL); err != nil {
		return "", &APIError{Kind: KindInvalidRequestTarget, cause: err}
	}

	if len(ep.Params) == 0 {
		return reqURL, nil
	}

	var query strings.Builder
	for i, p := range ep.Params {
		if i > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(p.Name))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p.Value))
	}
	return reqURL + "?" + query.String(), nil
}

// setAuthHeader adds the Gitea token header. The scheme is "token", not
// OAuth "Bearer".
func (c *Client) setAuthHeader(req *http.Request) {
	if c.tokenProvider == nil {
		return
	}
	if token := c.tokenProvider(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("token %s", token))
	}
}

func (c *Client) execute(req *http.Request, result any) error {
	if c.logger != nil {
		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.Path).
			Msg("Gitea API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.logger != nil {
			c.logger.Debug().
				Int("status", resp.StatusCode).
				Str("url", req.URL.Path).
				Msg("Gitea API request failed")
		}
		return statusError(resp.StatusCode)
	}

	if result == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return decodeError(err)
	}
	return nil
}
