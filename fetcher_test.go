package showcase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alnah/go-showcase/internal/linkpreview"
)

func TestHTTPFetcher_FetchMetadata(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><head>
<title>Tool</title>
<meta property="og:description" content="Does things">
<meta property="og:site_name" content="Toolbox">
<meta property="og:image" content="/card.png">
</head></html>`)
	})
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher(HTTPOptions{Timeout: 5 * time.Second})

	md, err := f.FetchMetadata(context.Background(), srv.URL+"/old")
	if err != nil {
		t.Fatalf("FetchMetadata() error: %v", err)
	}
	if md.URL != srv.URL+"/" {
		t.Errorf("URL = %q, want %q", md.URL, srv.URL+"/")
	}
	if md.Title != "Tool" || md.Description != "Does things" {
		t.Errorf("Title/Description = %q/%q", md.Title, md.Description)
	}
	if md.ContentType != "text/html" || md.SiteName != "Toolbox" {
		t.Errorf("ContentType/SiteName = %q/%q, want text/html/Toolbox", md.ContentType, md.SiteName)
	}
	if len(md.Images) != 1 || md.Images[0] != srv.URL+"/card.png" {
		t.Errorf("Images = %v, want [%s/card.png]", md.Images, srv.URL)
	}

	if _, err := f.FetchMetadata(context.Background(), srv.URL+"/gone"); !errors.Is(err, linkpreview.ErrUnexpectedStatus) {
		t.Errorf("gone: error = %v, want ErrUnexpectedStatus", err)
	}
}

func TestHTTPFetcher_CustomClient(t *testing.T) {
	t.Parallel()

	var agent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent.Store(r.UserAgent())
		w.Header().Set("Content-Type", "text/plain")
	}))
	t.Cleanup(srv.Close)

	f := NewHTTPFetcher(HTTPOptions{Client: srv.Client(), UserAgent: "showcase-test"})
	md, err := f.FetchMetadata(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchMetadata() error: %v", err)
	}
	if len(md.Images) != 0 || md.Description != "" {
		t.Errorf("plain text should yield empty metadata, got %+v", md)
	}
	if got, _ := agent.Load().(string); got != "showcase-test" {
		t.Errorf("User-Agent = %q, want showcase-test", got)
	}
}

func TestCachedFetcher_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	next := MetadataFetcherFunc(func(ctx context.Context, url string) (*Metadata, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("transient")
		}
		return &Metadata{URL: url, Description: "ok"}, nil
	})

	f, err := newCachedFetcher(next, 8)
	if err != nil {
		t.Fatalf("newCachedFetcher() error: %v", err)
	}
	t.Cleanup(f.Close)

	ctx := context.Background()
	if _, err := f.FetchMetadata(ctx, "https://x.dev"); err == nil {
		t.Fatal("first call error = nil, want transient error")
	}
	for i := 0; i < 2; i++ {
		md, err := f.FetchMetadata(ctx, "https://x.dev")
		if err != nil || md.Description != "ok" {
			t.Fatalf("call %d = %+v, %v", i+2, md, err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("next called %d times, want 2", got)
	}
}
