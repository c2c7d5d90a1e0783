package cdn

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gedphotos/gedphotos/pkg/domain/interfaces"
)

type client struct {
	httpClient *http.Client
	userAgent  string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent to the CDN
func WithUserAgent(ua string) Option {
	return func(c *client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// NewClient creates a new CDN client
func NewClient(opts ...Option) interfaces.CDNClient {
	c := &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads the resource at url with a single blocking GET. The CDN
// links carried by GEDCOM exports expire server-side, so an expired link
// shows up here as a 403 or 404.
func (c *client) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to download photo", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", goerr.New("unexpected status code",
			goerr.V("code", resp.StatusCode), goerr.V("url", url))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}

	return data, resp.Header.Get("Content-Type"), nil
}
