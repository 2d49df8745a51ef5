package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "worthit/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func tagged(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Scope", name)
			next.ServeHTTP(w, r)
		})
	}
}

func text(s string) phttp.Handler {
	return func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, s) }
}

// calcRouter lays out routes the way the api and web modules do
func calcRouter() phttp.Router {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Use(tagged("root"))
	r.Get("/", text("page"))
	r.Route("/api/v1", func(api phttp.Router) {
		api.Use(tagged("api"))
		api.Route("/worth", func(w phttp.Router) {
			w.Get("/", text("evaluate"))
			w.Post("/share", text("share"))
		})
		api.Group(func(g phttp.Router) {
			g.Use(tagged("meta"))
			g.Get("/meta/ready", text("ready"))
		})
		api.Handle("/docs/*", http.HandlerFunc(text("docs")))
	})
	return r
}

func TestAdaptChi_ScopesAndMiddleware(t *testing.T) {
	mux := calcRouter().Mux()

	tests := []struct {
		method, path string
		code         int
		body         string
		scopes       string
	}{
		{"GET", "/", 200, "page", "root"},
		{"GET", "/api/v1/worth", 200, "evaluate", "root,api"},
		{"POST", "/api/v1/worth/share", 200, "share", "root,api"},
		{"GET", "/api/v1/meta/ready", 200, "ready", "root,api,meta"},
		{"GET", "/api/v1/docs/index.html", 200, "docs", "root,api"},
		{"POST", "/", 405, "", "root"},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.code {
			t.Fatalf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, tc.code)
		}
		if tc.body != "" && rec.Body.String() != tc.body {
			t.Fatalf("%s %s: body = %q, want %q", tc.method, tc.path, rec.Body.String(), tc.body)
		}
		if got := strings.Join(rec.Header().Values("X-Scope"), ","); got != tc.scopes {
			t.Fatalf("%s %s: scopes = %q, want %q", tc.method, tc.path, got, tc.scopes)
		}
	}
}

func TestAdaptChi_ScopedMuxServesItsOwnRoutes(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	var scoped http.Handler
	r.Route("/api/v1", func(api phttp.Router) {
		api.Get("/worth", text("evaluate"))
		scoped = api.Mux()
	})
	if scoped == nil {
		t.Fatal("scoped router has no handler")
	}

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()
	res, err := http.Get(srv.URL + "/api/v1/worth")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = res.Body.Close() }()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK || string(body) != "evaluate" {
		t.Fatalf("over the wire: %d %q", res.StatusCode, body)
	}
}
