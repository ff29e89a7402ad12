package showcase

import (
	"context"
	"net/http"
	"time"

	"github.com/alnah/go-showcase/internal/linkpreview"
	"github.com/alnah/go-showcase/internal/previewcache"
)

// HTTP fetcher defaults.
const (
	DefaultFetchTimeout = linkpreview.DefaultTimeout
	DefaultUserAgent    = linkpreview.DefaultUserAgent
	DefaultMaxBodyBytes = linkpreview.DefaultMaxBodyBytes
)

// HTTPOptions configures the HTTP metadata fetcher.
type HTTPOptions struct {
	Timeout      time.Duration // per request, redirects included; 0 disables
	UserAgent    string        // empty uses DefaultUserAgent
	MaxBodyBytes int64         // 0 uses DefaultMaxBodyBytes
	Client       *http.Client  // optional; replaces the default client
}

// DefaultHTTPOptions returns the options used when none are given.
func DefaultHTTPOptions() HTTPOptions {
	return HTTPOptions{
		Timeout:      DefaultFetchTimeout,
		UserAgent:    DefaultUserAgent,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// httpFetcher adapts the internal link preview client to MetadataFetcher.
type httpFetcher struct {
	client *linkpreview.Client
}

// NewHTTPFetcher returns a MetadataFetcher that reads preview metadata from
// web pages over HTTP, following redirects.
func NewHTTPFetcher(opts HTTPOptions) MetadataFetcher {
	clientOpts := []linkpreview.Option{
		linkpreview.WithHTTPClient(opts.Client),
		linkpreview.WithUserAgent(opts.UserAgent),
		linkpreview.WithMaxBodyBytes(opts.MaxBodyBytes),
	}
	if opts.Client == nil {
		clientOpts = append(clientOpts, linkpreview.WithTimeout(opts.Timeout))
	}
	return &httpFetcher{client: linkpreview.New(clientOpts...)}
}

func (f *httpFetcher) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	md, err := f.client.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return &Metadata{
		URL:         md.URL,
		ContentType: md.ContentType,
		Title:       md.Title,
		Description: md.Description,
		SiteName:    md.SiteName,
		Images:      md.Images,
	}, nil
}

// cachedFetcher memoizes successful fetches for the life of a Generator.
type cachedFetcher struct {
	next  MetadataFetcher
	cache *previewcache.Cache[*Metadata]
}

func newCachedFetcher(next MetadataFetcher, size int64) (*cachedFetcher, error) {
	cache, err := previewcache.New[*Metadata](size)
	if err != nil {
		return nil, err
	}
	return &cachedFetcher{next: next, cache: cache}, nil
}

func (f *cachedFetcher) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	md, _, err := f.cache.Do(ctx, url, func(ctx context.Context) (*Metadata, error) {
		return f.next.FetchMetadata(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return md, nil
}

func (f *cachedFetcher) Close() {
	f.cache.Close()
}

// Compile-time interface checks.
var (
	_ MetadataFetcher = (*httpFetcher)(nil)
	_ MetadataFetcher = (*cachedFetcher)(nil)
)
