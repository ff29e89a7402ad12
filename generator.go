package showcase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-showcase/internal/assets"
	"github.com/alnah/go-showcase/internal/previewcache"
)

// Generator fetches previews for projects and splices the rendered list
// into a document. A Generator is safe for concurrent use until Close.
type Generator struct {
	cfg      generatorConfig
	resolver *previewResolver
	renderer *fragmentRenderer
	cache    *cachedFetcher // nil when caching is disabled

	mu     sync.Mutex
	closed bool
}

// NewGenerator creates a Generator. Without WithFetcher it fetches previews
// over HTTP with DefaultHTTPOptions.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := generatorConfig{
		logger:      slog.Default(),
		imageHeight: DefaultImageHeight,
		template:    assets.DefaultTemplateName,
		cacheSize:   previewcache.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.workers < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkers, cfg.workers)
	}
	if cfg.imageHeight < 1 || cfg.imageHeight > MaxImageHeight {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidImageHeight, cfg.imageHeight, MaxImageHeight)
	}
	if cfg.fetcher == nil {
		cfg.fetcher = NewHTTPFetcher(DefaultHTTPOptions())
	}

	renderer, err := newFragmentRenderer(assets.NewEmbeddedLoader(), cfg.template, cfg.imageHeight)
	if err != nil {
		return nil, err
	}

	g := &Generator{cfg: cfg, renderer: renderer}

	fetcher := cfg.fetcher
	if !cfg.noCache {
		g.cache, err = newCachedFetcher(fetcher, cfg.cacheSize)
		if err != nil {
			return nil, err
		}
		fetcher = g.cache
	}
	g.resolver = &previewResolver{fetcher: fetcher, logger: cfg.logger}

	return g, nil
}

// projectResult is the outcome of one project's preview chain.
type projectResult struct {
	fragment string
	preview  Preview
	ok       bool
}

// Render fetches a preview for every project concurrently and returns the
// fragments joined in input order. Fetch failures degrade to the project's
// static description; only template errors and cancellation are returned.
func (g *Generator) Render(ctx context.Context, projects []Project) (string, *Report, error) {
	if err := g.checkOpen(); err != nil {
		return "", nil, err
	}

	results := make([]projectResult, len(projects))

	eg, egCtx := errgroup.WithContext(ctx)
	if g.cfg.workers > 0 {
		eg.SetLimit(g.cfg.workers)
	}
	for i, p := range projects {
		eg.Go(func() error {
			preview, ok := g.resolver.Resolve(egCtx, p.Website, p.Repo)
			fragment, err := g.renderer.Render(i, p, preview)
			if err != nil {
				return err
			}
			results[i] = projectResult{fragment: fragment, preview: preview, ok: ok}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return "", nil, err
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	report := &Report{Projects: len(projects)}
	fragments := make([]string, len(results))
	for i, r := range results {
		fragments[i] = r.fragment
		if r.preview.Image != "" {
			report.Images++
		}
		if r.preview.Description != "" {
			report.Descriptions++
		}
		if !r.ok {
			report.Failed++
		}
	}
	return joinFragments(fragments), report, nil
}

// Update reads the document from store, renders projects into section and
// writes the result back. Markers are checked before any preview is fetched;
// a marker error leaves the document untouched.
func (g *Generator) Update(ctx context.Context, store DocumentStore, section string, projects []Project) (*Report, error) {
	doc, report, err := g.Generate(ctx, store, section, projects)
	if err != nil {
		return nil, err
	}
	if err := store.WriteDocument(ctx, doc); err != nil {
		return nil, err
	}
	return report, nil
}

// Generate is Update without the write: it returns the new document content.
func (g *Generator) Generate(ctx context.Context, store DocumentStore, section string, projects []Project) (string, *Report, error) {
	if err := ValidateSection(section); err != nil {
		return "", nil, err
	}

	doc, err := store.ReadDocument(ctx)
	if err != nil {
		return "", nil, err
	}
	if err := g.checkMarkers(doc, section); err != nil {
		return "", nil, err
	}

	content, report, err := g.Render(ctx, projects)
	if err != nil {
		return "", nil, err
	}

	updated, err := Splice(doc, content, section)
	if err != nil {
		return "", nil, err
	}
	report.Changed = updated != doc
	return updated, report, nil
}

func (g *Generator) checkMarkers(doc, section string) error {
	if g.cfg.strict {
		return ValidateMarkers(doc, section)
	}
	_, _, err := findMarkers(splitLines(doc), doc, section)
	return err
}

// Close releases the preview cache. Safe to call more than once.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	if g.cache != nil {
		g.cache.Close()
	}
	return nil
}

func (g *Generator) checkOpen() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrGeneratorClosed
	}
	return nil
}
