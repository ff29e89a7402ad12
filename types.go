package showcase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Default values.
const (
	DefaultSection     = "INSERT-PROJECTS"
	DefaultImageHeight = 200
	MaxImageHeight     = 2000
)

// Project is one entry of the showcase list.
type Project struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Website     string `yaml:"website" json:"website"`
	Repo        string `yaml:"repo,omitempty" json:"repo,omitempty"`
}

// Validate checks that the project can be fetched and rendered.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProject)
	}
	if !isHTTPURL(p.Website) {
		return fmt.Errorf("%w: %s: website must be an http(s) URL, got %q", ErrInvalidProject, p.Name, p.Website)
	}
	if p.Repo != "" && !isHTTPURL(p.Repo) {
		return fmt.Errorf("%w: %s: repo must be an http(s) URL, got %q", ErrInvalidProject, p.Name, p.Repo)
	}
	return nil
}

// Preview is the best-effort image and description found for a project.
// Empty fields mean nothing was found.
type Preview struct {
	Image       string
	Description string
}

// Metadata is what a MetadataFetcher returns for one URL.
type Metadata struct {
	URL         string   // final URL after redirects
	ContentType string   // response media type, e.g. text/html
	Title       string
	Description string
	SiteName    string   // og:site_name
	Images      []string // absolute image URLs, most relevant first
}

// MetadataFetcher retrieves preview metadata for a URL.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, url string) (*Metadata, error)
}

// MetadataFetcherFunc adapts a function to MetadataFetcher.
type MetadataFetcherFunc func(ctx context.Context, url string) (*Metadata, error)

// FetchMetadata calls f(ctx, url).
func (f MetadataFetcherFunc) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	return f(ctx, url)
}

// Report summarizes a Render or Update run.
type Report struct {
	Projects     int  // projects rendered
	Images       int  // projects rendered with an image
	Descriptions int  // projects whose description came from a preview
	Failed       int  // projects whose preview chain failed
	Changed      bool // document content differs from what was read
}

// Option configures a Generator.
type Option func(*generatorConfig)

type generatorConfig struct {
	fetcher     MetadataFetcher
	workers     int
	logger      *slog.Logger
	imageHeight int
	template    string
	strict      bool
	cacheSize   int64
	noCache     bool
}

// WithFetcher sets the metadata source. Defaults to an HTTP fetcher.
func WithFetcher(f MetadataFetcher) Option {
	return func(c *generatorConfig) {
		c.fetcher = f
	}
}

// WithWorkers caps the number of concurrent preview chains.
// Zero (the default) runs one per project.
func WithWorkers(n int) Option {
	return func(c *generatorConfig) {
		c.workers = n
	}
}

// WithLogger sets the logger used to report fetch failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *generatorConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithImageHeight sets the height attribute of rendered preview images.
func WithImageHeight(px int) Option {
	return func(c *generatorConfig) {
		c.imageHeight = px
	}
}

// WithTemplate selects the fragment template: an embedded template name
// ("project", "compact") or a path to a template file.
func WithTemplate(nameOrPath string) Option {
	return func(c *generatorConfig) {
		c.template = nameOrPath
	}
}

// WithStrictMarkers rejects documents with duplicate or misordered markers
// instead of splicing into the first pair found.
func WithStrictMarkers(strict bool) Option {
	return func(c *generatorConfig) {
		c.strict = strict
	}
}

// WithCache sets how many URLs are memoized per run. Zero or less disables
// the cache.
func WithCache(size int64) Option {
	return func(c *generatorConfig) {
		c.cacheSize = size
		c.noCache = size <= 0
	}
}
