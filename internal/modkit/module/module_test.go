package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "worthit/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pingModule struct{ name string }

func (p pingModule) MountRoutes(r phttp.Router) {
	r.Get("/"+p.name, func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
}
func (p pingModule) Ports() any   { return p.name }
func (p pingModule) Name() string { return p.name }

var _ Module = pingModule{}

func TestModule_MountsAndRegisters(t *testing.T) {
	var reg Registry
	mux := chi.NewRouter()
	for _, m := range []Module{pingModule{"worth"}, pingModule{"meta"}} {
		reg.Register(m.Name(), m.Ports())
		m.MountRoutes(phttp.AdaptChi(mux))
	}

	for _, name := range []string{"worth", "meta"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/"+name, nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("GET /%s = %d", name, rec.Code)
		}
		if v, ok := reg.Lookup(name); !ok || v != name {
			t.Fatalf("ports for %s = %v %v", name, v, ok)
		}
	}
}
