package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"worthit/internal/platform/config"
	phttp "worthit/internal/platform/net/http"
)

func TestMountProfiler(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		path    string
		want    int
	}{
		{"index", true, "/debug/pprof/", http.StatusOK},
		{"cmdline", true, "/debug/pprof/cmdline", http.StatusOK},
		{"disabled", false, "/debug/pprof/", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := phttp.NewServer(config.New().Prefix("API_")).Router()
			phttp.MountProfiler(r, "/debug", tc.enabled)

			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", tc.path, nil))
			if rec.Code != tc.want {
				t.Fatalf("GET %s = %d, want %d", tc.path, rec.Code, tc.want)
			}
		})
	}
}
