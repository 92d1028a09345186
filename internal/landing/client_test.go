package landing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newUpstream(t *testing.T, routes map[string]func(http.ResponseWriter)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if fn, ok := routes[r.URL.Path]; ok {
			fn(w)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(body string) func(http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestClient_GetDataDecodesArray(t *testing.T) {
	srv := newUpstream(t, map[string]func(http.ResponseWriter){
		BannersPath: writeJSON(`[{"id":1},{"id":2,"title":"Sale"}]`),
	})
	c := NewClient(srv.URL+"/", time.Second)

	items, err := c.GetData(context.Background(), BannersPath)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 2 || string(items[1]) != `{"id":2,"title":"Sale"}` {
		t.Fatalf("unexpected items %q", items)
	}
}

func TestClient_GetDataErrors(t *testing.T) {
	srv := newUpstream(t, map[string]func(http.ResponseWriter){
		"/status":  func(w http.ResponseWriter) { w.WriteHeader(http.StatusInternalServerError) },
		"/object":  writeJSON(`{"items":[]}`),
		"/null":    writeJSON(`null`),
		"/garbage": writeJSON(`[{"id":`),
	})
	c := NewClient(srv.URL, time.Second)

	cases := map[string]error{
		"/status":  ErrUnexpectedStatus,
		"/missing": ErrUnexpectedStatus,
		"/object":  ErrNotAList,
		"/null":    ErrNotAList,
		"/garbage": ErrNotAList,
	}
	for path, want := range cases {
		if _, err := c.GetData(context.Background(), path); !errors.Is(err, want) {
			t.Fatalf("%s: expected %v, got %v", path, want, err)
		}
	}
}

func TestClient_CanceledContext(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.GetData(ctx, BannersPath); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClient_UnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := NewClient(url, time.Second).GetData(context.Background(), BannersPath); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestPage_WithClientEndToEnd(t *testing.T) {
	srv := newUpstream(t, map[string]func(http.ResponseWriter){
		BannersPath:         writeJSON(`[{"id":1}]`),
		PopularProductsPath: func(w http.ResponseWriter) { w.WriteHeader(http.StatusBadGateway) },
		LimitedProductsPath: writeJSON(`[{"id":7,"count":2}]`),
	})
	logger := &recordingLogger{}
	p := NewPage(NewClient(srv.URL, time.Second)).WithLogger(logger)

	p.Load(context.Background())

	got := encode(t, p.State())
	want := `{"banners":[{"id":1}],"popularCards":[],"limitedCards":[{"id":7,"count":2}]}`
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if !logger.hasWarning(PopularProductsWarning) {
		t.Fatalf("expected popular products warning, got %v", logger.warns)
	}
}

func TestClient_CancelDuringSlowUpstream(t *testing.T) {
	release := make(chan struct{})
	srv := newUpstream(t, map[string]func(http.ResponseWriter){
		BannersPath: func(w http.ResponseWriter) {
			<-release
			writeJSON(`[]`)(w)
		},
	})
	t.Cleanup(func() { close(release) })
	c := NewClient(srv.URL, 3*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	_, err := c.GetData(ctx, BannersPath)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancel must end the request early, returned after %s", elapsed)
	}
}

func TestClient_NoTimeoutStillHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := newUpstream(t, map[string]func(http.ResponseWriter){
		LimitedProductsPath: func(w http.ResponseWriter) {
			<-release
			writeJSON(`[]`)(w)
		},
	})
	t.Cleanup(func() { close(release) })
	c := NewClient(srv.URL, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := c.GetData(ctx, LimitedProductsPath); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestClient_EffectiveTimeout(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Minute)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	if _, err := c.effectiveTimeout(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected an expired deadline to be an error, got %v", err)
	}

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	got, err := c.effectiveTimeout(ctx2)
	if err != nil || got <= 0 || got > time.Second {
		t.Fatalf("expected the deadline to shorten the timeout, got %s, %v", got, err)
	}

	if got, err := c.effectiveTimeout(context.Background()); err != nil || got != time.Minute {
		t.Fatalf("expected the client timeout without a deadline, got %s, %v", got, err)
	}
}
