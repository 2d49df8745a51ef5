package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worthit/internal/modkit/module"
	"worthit/internal/platform/config"
	phttp "worthit/internal/platform/net/http"
	kit "worthit/internal/platform/testkit"
	worthmod "worthit/internal/services/api/worth/module"

	"github.com/go-chi/chi/v5"
)

func newRouter(t *testing.T, swagger bool) *chi.Mux {
	t.Helper()
	kit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), Options{Config: config.New().Prefix("WORTHIT_TEST_"), EnableSwagger: swagger})
	return m
}

func get(m http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}

func TestMount_Routes(t *testing.T) {
	m := newRouter(t, true)

	cases := []struct {
		path string
		want string
	}{
		{"/api/v1/worth?a=60&m=5&r=50", `"computable":true`},
		{"/api/v1/meta/health", `"ok":true`},
		{"/api/v1/meta/ready", `"status":"ok","checks"`},
		{"/api/v1/meta/languages", `"pl"`},
		{"/?a=60&m=5&r=50", "3h 10min"},
		{"/api/docs/doc.json", `"/worth/share"`},
	}
	for _, c := range cases {
		rec := get(m, c.path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", c.path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), c.want) {
			t.Fatalf("%s: body missing %q", c.path, c.want)
		}
		if !strings.HasPrefix(c.path, "/api/docs") && rec.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s: missing request id", c.path)
		}
	}
}

func TestMount_RegistersPorts(t *testing.T) {
	newRouter(t, false)
	p, ok := module.PortsAs[worthmod.Ports]("worth")
	if !ok || p.Service == nil {
		t.Fatal("worth ports were not registered")
	}
}

func TestMount_SwaggerDisabled(t *testing.T) {
	m := newRouter(t, false)
	if rec := get(m, "/api/docs/doc.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("docs should be off, got %d", rec.Code)
	}
}
