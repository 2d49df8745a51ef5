package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"worthit/internal/platform/net/middleware"
)

func TestSlashesAndHeartbeat(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.URL.Path)
	})
	for _, tc := range []struct {
		name   string
		mw     middleware.Middleware
		path   string
		status int
		body   string
	}{
		{"strip", middleware.StripSlashes(), "/worth/", http.StatusOK, "/worth"},
		{"redirect", middleware.RedirectSlashes(), "/worth/", http.StatusMovedPermanently, ""},
		{"heartbeat", middleware.Heartbeat("/health"), "/health", http.StatusOK, "."},
		{"heartbeat other path", middleware.Heartbeat("/health"), "/worth", http.StatusOK, "/worth"},
		{"no cache", middleware.NoCache(), "/worth", http.StatusOK, "/worth"},
		{"timeout", middleware.Timeout(time.Second), "/worth", http.StatusOK, "/worth"},
		{"real ip", middleware.RealIP(), "/worth", http.StatusOK, "/worth"},
	} {
		rr := httptest.NewRecorder()
		tc.mw(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.name, rr.Code, tc.status)
		}
		if tc.body != "" && rr.Body.String() != tc.body {
			t.Fatalf("%s: body = %q, want %q", tc.name, rr.Body.String(), tc.body)
		}
	}
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":"`+strings.Repeat("worth", 1000)+`"}`)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/worth", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if enc := rr.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("Content-Encoding = %q", enc)
	}
}

func TestCORS_PreflightDefaults(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://worth.example"}})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/worth/compute", nil)
	req.Header.Set("Origin", "https://worth.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK && rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://worth.example" {
		t.Fatalf("allow origin = %q", got)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" || rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatalf("preflight headers missing: %v", rr.Header())
	}
}

func TestAllowContentType_RejectsOtherBodies(t *testing.T) {
	h := middleware.AllowContentType("application/json")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/worth/compute", strings.NewReader("a=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("form body: expected 415 got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/worth/compute", strings.NewReader(`{"repetitions":1}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("json body: expected 204 got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/worth/?a=1", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("bodiless GET: expected 204 got %d", rr.Code)
	}
}

func TestThrottle_RejectsOverLimit(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	h := middleware.Throttle(1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	}))

	done := make(chan int)
	go func() {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		done <- rr.Code
	}()
	<-entered

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", rr.Code)
	}
	close(release)
	if code := <-done; code != http.StatusOK {
		t.Fatalf("first request got %d", code)
	}
}
