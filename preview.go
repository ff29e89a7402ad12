package showcase

import (
	"context"
	"fmt"
	"log/slog"
)

// previewResolver runs the per-project fetch chain against a MetadataFetcher.
type previewResolver struct {
	fetcher MetadataFetcher
	logger  *slog.Logger
}

// Resolve finds a preview for website, falling back to repo for the image
// and description. It never fails: any error or panic along the chain yields
// an empty Preview and a log record.
func (r *previewResolver) Resolve(ctx context.Context, website, repo string) (p Preview, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logFailure(ctx, fmt.Errorf("panic: %v", rec), website, repo)
			p, ok = Preview{}, false
		}
	}()

	p, err := r.resolve(ctx, website, repo)
	if err != nil {
		r.logFailure(ctx, err, website, repo)
		return Preview{}, false
	}
	return p, true
}

func (r *previewResolver) resolve(ctx context.Context, website, repo string) (Preview, error) {
	primary, err := r.fetch(ctx, website)
	if err != nil {
		return Preview{}, err
	}
	if len(primary.Images) > 0 {
		return Preview{Image: primary.Images[0], Description: primary.Description}, nil
	}
	description := primary.Description

	if repo != "" {
		secondary, err := r.fetch(ctx, repo)
		if err != nil {
			return Preview{}, err
		}
		if secondary.Description != "" {
			description = secondary.Description
		}
		if len(secondary.Images) > 0 {
			return Preview{Image: secondary.Images[0], Description: description}, nil
		}
	}

	return Preview{Description: description}, nil
}

func (r *previewResolver) fetch(ctx context.Context, url string) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	md, err := r.fetcher.FetchMetadata(ctx, url)
	if err != nil {
		return nil, err
	}
	if md == nil {
		return &Metadata{URL: url}, nil
	}
	return md, nil
}

func (r *previewResolver) logFailure(ctx context.Context, err error, website, repo string) {
	r.logger.LogAttrs(ctx, slog.LevelError, "preview fetch failed",
		slog.String("error", err.Error()),
		slog.String("website", website),
		slog.String("repo", repo),
	)
}
