package showcase

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Doubles
// ---------------------------------------------------------------------------

// fakeResponse is what fakeFetcher returns for one URL.
type fakeResponse struct {
	md    *Metadata
	err   error
	panic any
	wait  chan struct{} // blocks the fetch until closed
}

// fakeFetcher serves canned metadata and records every URL it was asked for.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []string
}

func newFakeFetcher(responses map[string]fakeResponse) *fakeFetcher {
	return &fakeFetcher{responses: responses}
}

func (f *fakeFetcher) FetchMetadata(ctx context.Context, url string) (*Metadata, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	resp, ok := f.responses[url]
	f.mu.Unlock()

	if resp.wait != nil {
		select {
		case <-resp.wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if resp.panic != nil {
		panic(resp.panic)
	}
	if !ok {
		return &Metadata{URL: url}, nil
	}
	return resp.md, resp.err
}

func (f *fakeFetcher) calledWith(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == url {
			n++
		}
	}
	return n
}

// memoryDocument is an in-memory DocumentStore.
type memoryDocument struct {
	mu       sync.Mutex
	content  string
	readErr  error
	writeErr error
	writes   int
}

func (d *memoryDocument) ReadDocument(context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.readErr != nil {
		return "", d.readErr
	}
	return d.content, nil
}

func (d *memoryDocument) WriteDocument(_ context.Context, content string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.writeErr != nil {
		return d.writeErr
	}
	d.content = content
	d.writes++
	return nil
}

// captureLogger returns a JSON logger writing to the returned buffer.
func captureLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// writeTemplate writes src to a temp file and returns its path.
func writeTemplate(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fragment.tmpl")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
