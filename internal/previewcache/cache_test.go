package previewcache_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alnah/go-showcase/internal/previewcache"
)

func newCache(t *testing.T) *previewcache.Cache[string] {
	t.Helper()
	c, err := previewcache.New[string](16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestCache_Do_Memoizes(t *testing.T) {
	t.Parallel()

	c := newCache(t)
	var calls atomic.Int32
	fn := func(context.Context) (string, error) {
		calls.Add(1)
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		v, _, err := c.Do(context.Background(), "https://a.dev", fn)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		if v != "value" {
			t.Errorf("v = %q, want %q", v, "value")
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("fn called %d times, want 1", got)
	}

	failing := func(context.Context) (string, error) { return "", errors.New("should not run") }
	v, shared, err := c.Do(context.Background(), "https://a.dev", failing)
	if err != nil || v != "value" || !shared {
		t.Errorf("cached Do = (%q, %v, %v), want (value, true, nil)", v, shared, err)
	}
}

func TestCache_Do_PanicBecomesError(t *testing.T) {
	t.Parallel()

	c := newCache(t)
	var calls atomic.Int32
	fn := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			panic("boom")
		}
		return "ok", nil
	}

	_, _, err := c.Do(context.Background(), "k", fn)
	if !errors.Is(err, previewcache.ErrPanic) {
		t.Fatalf("err = %v, want ErrPanic", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("err %q should carry the panic value", err)
	}

	v, _, err := c.Do(context.Background(), "k", fn)
	if err != nil || v != "ok" {
		t.Errorf("second Do = (%q, %v), want (ok, nil): panics must not be cached", v, err)
	}
}

func TestCache_Do_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	c := newCache(t)
	boom := errors.New("boom")
	var calls atomic.Int32
	fn := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", boom
		}
		return "ok", nil
	}

	if _, _, err := c.Do(context.Background(), "k", fn); !errors.Is(err, boom) {
		t.Fatalf("first Do err = %v, want boom", err)
	}
	v, _, err := c.Do(context.Background(), "k", fn)
	if err != nil {
		t.Fatalf("second Do: %v", err)
	}
	if v != "ok" {
		t.Errorf("v = %q, want ok", v)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("fn called %d times, want 2", got)
	}
}

func TestCache_Do_SharesInFlight(t *testing.T) {
	t.Parallel()

	c := newCache(t)
	release := make(chan struct{})
	var calls atomic.Int32
	fn := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _, err := c.Do(context.Background(), "same", fn)
			if err != nil {
				t.Errorf("Do: %v", err)
			}
			results[i] = v
		}(i)
	}

	// Give callers time to pile up on the in-flight call before releasing it.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fn called %d times, want 1", got)
	}
	for i, v := range results {
		if v != "shared" {
			t.Errorf("results[%d] = %q, want shared", i, v)
		}
	}
}

func TestCache_Do_ContextCanceled(t *testing.T) {
	t.Parallel()

	c := newCache(t)
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	fn := func(ctx context.Context) (string, error) {
		close(started)
		<-ctx.Done()
		return "", ctx.Err()
	}

	done := make(chan error, 1)
	go func() {
		_, _, err := c.Do(ctx, "slow", fn)
		done <- err
	}()
	<-started
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCache_Close(t *testing.T) {
	t.Parallel()

	c, err := previewcache.New[string](0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c.Close()
	c.Close()

	_, _, err = c.Do(context.Background(), "k", func(context.Context) (string, error) { return "v", nil })
	if !errors.Is(err, previewcache.ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
}
