package linkpreview

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// Client defaults.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 1 << 20 // previews live in <head>; 1MB is generous
	DefaultUserAgent    = "go-showcase/1.0 (+https://github.com/alnah/go-showcase)"
	maxRedirects        = 10
)

// Client fetches pages over HTTP and extracts their preview metadata.
// A Client is safe for concurrent use.
type Client struct {
	http         *http.Client
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
// Its redirect policy is kept as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodyBytes caps how much of a response body is parsed.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// New creates a Client that follows up to 10 redirects.
func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout:       DefaultTimeout,
			CheckRedirect: limitRedirects,
		},
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, maxRedirects)
	}
	return nil
}

// Fetch retrieves rawURL and returns its preview metadata.
// Non-2xx responses are errors. Responses that are neither HTML nor an
// image produce metadata with no title, description or images.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Metadata, error) {
	target, err := parseTarget(rawURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,image/*;q=0.8,*/*;q=0.5")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, rawURL, resp.StatusCode)
	}

	finalURL := resp.Request.URL
	rawType := resp.Header.Get("Content-Type")
	mediaType := mediaTypeOf(rawType)

	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return &Metadata{URL: finalURL.String(), ContentType: mediaType, Images: []string{finalURL.String()}}, nil
	case mediaType == "" || mediaType == "text/html" || mediaType == "application/xhtml+xml":
		body, err := charset.NewReader(io.LimitReader(resp.Body, c.maxBodyBytes), rawType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableContent, err)
		}
		md, err := Parse(body, finalURL)
		if err != nil {
			return nil, err
		}
		md.ContentType = mediaType
		return md, nil
	default:
		return &Metadata{URL: finalURL.String(), ContentType: mediaType}, nil
	}
}

// parseTarget accepts absolute http(s) URLs only.
func parseTarget(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return u, nil
}

func mediaTypeOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	}
	return mt
}
