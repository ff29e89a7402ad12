package showcase

// Notes:
// - previewResolver.Resolve: image from the website wins; the repo is only
//   consulted when the website has no image
// - Every failure (error, panic, nil metadata) degrades to an empty Preview and
//   is logged with error, website and repo attributes

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

const (
	site = "https://site.example"
	repo = "https://github.com/example/repo"
)

func TestPreviewResolver_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responses map[string]fakeResponse
		repo      string
		want      Preview
		wantOK    bool
		wantRepo  int // expected fetches of the repo URL
	}{
		{
			name: "website image wins",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Images: []string{"https://site.example/a.png", "https://site.example/b.png"}, Description: "site"}},
				repo: {md: &Metadata{Images: []string{"https://repo/card.png"}, Description: "repo"}},
			},
			repo:     repo,
			want:     Preview{Image: "https://site.example/a.png", Description: "site"},
			wantOK:   true,
			wantRepo: 0,
		},
		{
			name: "website image with empty description",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Images: []string{"https://site.example/a.png"}}},
			},
			repo:   repo,
			want:   Preview{Image: "https://site.example/a.png"},
			wantOK: true,
		},
		{
			name: "repo image with website description",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Description: "site"}},
				repo: {md: &Metadata{Images: []string{"https://repo/card.png"}}},
			},
			repo:     repo,
			want:     Preview{Image: "https://repo/card.png", Description: "site"},
			wantOK:   true,
			wantRepo: 1,
		},
		{
			name: "repo description overrides",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Description: "site"}},
				repo: {md: &Metadata{Images: []string{"https://repo/card.png"}, Description: "repo"}},
			},
			repo:     repo,
			want:     Preview{Image: "https://repo/card.png", Description: "repo"},
			wantOK:   true,
			wantRepo: 1,
		},
		{
			name: "repo without image keeps overridden description",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Description: "site"}},
				repo: {md: &Metadata{Description: "repo"}},
			},
			repo:     repo,
			want:     Preview{Description: "repo"},
			wantOK:   true,
			wantRepo: 1,
		},
		{
			name: "empty repo description does not override",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Description: "site"}},
				repo: {md: &Metadata{}},
			},
			repo:     repo,
			want:     Preview{Description: "site"},
			wantOK:   true,
			wantRepo: 1,
		},
		{
			name: "no repo and no image",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Description: "site"}},
			},
			want:   Preview{Description: "site"},
			wantOK: true,
		},
		{
			name:      "nothing found",
			responses: map[string]fakeResponse{site: {md: nil}},
			repo:      repo,
			want:      Preview{},
			wantOK:    true,
			wantRepo:  1,
		},
		{
			name: "website error skips repo",
			responses: map[string]fakeResponse{
				site: {err: errors.New("dial tcp: refused")},
				repo: {md: &Metadata{Images: []string{"https://repo/card.png"}}},
			},
			repo:     repo,
			want:     Preview{},
			wantOK:   false,
			wantRepo: 0,
		},
		{
			name: "repo error discards website description",
			responses: map[string]fakeResponse{
				site: {md: &Metadata{Description: "site"}},
				repo: {err: errors.New("404")},
			},
			repo:     repo,
			want:     Preview{},
			wantOK:   false,
			wantRepo: 1,
		},
		{
			name: "both fail",
			responses: map[string]fakeResponse{
				site: {err: errors.New("boom")},
				repo: {err: errors.New("boom")},
			},
			repo:   repo,
			want:   Preview{},
			wantOK: false,
		},
		{
			name: "panic is recovered",
			responses: map[string]fakeResponse{
				site: {panic: "malformed metadata"},
			},
			repo:   repo,
			want:   Preview{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fetcher := newFakeFetcher(tt.responses)
			r := &previewResolver{fetcher: fetcher, logger: slog.New(slog.DiscardHandler)}

			got, ok := r.Resolve(context.Background(), site, tt.repo)
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
			if ok != tt.wantOK {
				t.Errorf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if n := fetcher.calledWith(repo); n != tt.wantRepo {
				t.Errorf("repo fetched %d times, want %d", n, tt.wantRepo)
			}
		})
	}
}

func TestPreviewResolver_LogsFailure(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	r := &previewResolver{
		fetcher: newFakeFetcher(map[string]fakeResponse{site: {err: errors.New("connection reset")}}),
		logger:  logger,
	}

	r.Resolve(context.Background(), site, repo)

	out := buf.String()
	for _, want := range []string{
		`"level":"ERROR"`,
		`"error":"connection reset"`,
		`"website":"` + site + `"`,
		`"repo":"` + repo + `"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestPreviewResolver_LogsPanic(t *testing.T) {
	t.Parallel()

	logger, buf := captureLogger()
	r := &previewResolver{
		fetcher: newFakeFetcher(map[string]fakeResponse{site: {panic: "bad"}}),
		logger:  logger,
	}

	if got, _ := r.Resolve(context.Background(), site, ""); got != (Preview{}) {
		t.Errorf("Resolve() = %+v, want empty", got)
	}
	if !strings.Contains(buf.String(), "panic: bad") {
		t.Errorf("log output missing panic: %s", buf.String())
	}
}

func TestPreviewResolver_CanceledContext(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher(nil)
	r := &previewResolver{fetcher: fetcher, logger: slog.New(slog.DiscardHandler)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, ok := r.Resolve(ctx, site, repo)
	if ok || got != (Preview{}) {
		t.Errorf("Resolve() = %+v, %v; want empty, false", got, ok)
	}
	if n := fetcher.calledWith(site); n != 0 {
		t.Errorf("fetcher called %d times after cancel, want 0", n)
	}
}
