package httpkit_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worthit/internal/modkit"
	"worthit/internal/modkit/httpkit"
	"worthit/internal/modkit/module"
	phttp "worthit/internal/platform/net/http"
	kit "worthit/internal/platform/testkit"
	metamod "worthit/internal/services/api/meta/module"
	worthmod "worthit/internal/services/api/worth/module"

	"github.com/go-chi/chi/v5"
)

func TestAPIPrefix(t *testing.T) {
	for in, want := range map[string]string{
		"v1":   "/api/v1",
		"/v2":  "/api/v2",
		"v3/":  "/api/v3",
		"/v1/": "/api/v1",
	} {
		if got := httpkit.APIPrefix(in); got != want {
			t.Fatalf("APIPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMountAPI_ServesModulesBehindStack(t *testing.T) {
	kit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	var stackHits int
	stack := []func(http.Handler) http.Handler{func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stackHits++
			next.ServeHTTP(w, r)
		})
	}}

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	mods := []module.Module{metamod.New(modkit.Deps{}), worthmod.New(modkit.Deps{})}
	httpkit.MountAPI(r, httpkit.APIVersion, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})

	tests := []struct {
		path string
		want string
	}{
		{"/api/v1/worth?a=60&m=5&r=50", `"computable":true`},
		{"/api/v1/meta/health", `"status":"ok"`},
		{"/api/v1/meta/ready", `"status":"ok"`},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", tc.path, nil))
		if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), tc.want) {
			t.Fatalf("GET %s: %d %s", tc.path, rec.Code, rec.Body.String())
		}
	}
	if stackHits != len(tests) {
		t.Fatalf("stack ran %d times, want %d", stackHits, len(tests))
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/worth?a=60&m=5&r=50", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unversioned path = %d, want 404", rec.Code)
	}
}

func TestMountUnder_NoMiddleware(t *testing.T) {
	mux := chi.NewRouter()
	httpkit.MountUnder(phttp.AdaptChi(mux), "/calc", nil, func(sub httpkit.Router) {
		httpkit.Get(sub, "/", func(*http.Request) (any, error) { return map[string]bool{"worth_it": true}, nil })
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/calc", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"worth_it":true`) {
		t.Fatalf("GET /calc: %d %s", rec.Code, rec.Body.String())
	}
}
