package modkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worthit/internal/modkit/httpkit"
	phttp "worthit/internal/platform/net/http"
	kit "worthit/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func tag(v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Trace", v)
			next.ServeHTTP(w, r)
		})
	}
}

func text(s string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, s) }
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := Build(WithName("worth"), WithPrefix("/worth"), WithMiddlewares(tag("a")), WithPrefix("calc/"), WithMiddlewares(tag("b")))
	if b.Name() != "worth" || b.Prefix() != "/calc" || len(b.Middlewares()) != 2 {
		t.Fatalf("built %q %q with %d middlewares", b.Name(), b.Prefix(), len(b.Middlewares()))
	}

	mws := b.Middlewares()
	mws[0] = nil
	if b.Middlewares()[0] == nil {
		t.Fatal("Middlewares must return a copy")
	}
}

func TestBase_RequiresNameAndPrefix(t *testing.T) {
	kit.MustPanic(t, func() { _ = Build(WithPrefix("/x")).Name() })
	kit.MustPanic(t, func() { _ = Build(WithName("x"), WithPrefix("  ")).Prefix() })
	if got := Build(WithName("web"), WithPrefix("/")).Prefix(); got != "/" {
		t.Fatalf("root prefix = %q", got)
	}
}

func TestBase_Mount(t *testing.T) {
	for _, tc := range []struct {
		prefix string
		own    string
		extra  string
	}{
		{"/worth", "/worth/compute", "/worth/extra"},
		{"/", "/compute", "/extra"},
	} {
		b := Build(
			WithName("worth"),
			WithPrefix(tc.prefix),
			WithMiddlewares(tag("a"), tag("b")),
			WithRegister(func(r httpkit.Router) { r.Get("/extra", text("extra")) }),
		)
		mux := chi.NewRouter()
		b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) { r.Get("/compute", text("own")) })

		for path, want := range map[string]string{tc.own: "own", tc.extra: "extra"} {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
			if rec.Body.String() != want {
				t.Fatalf("prefix %s: GET %s = %d %q", tc.prefix, path, rec.Code, rec.Body.String())
			}
			if got := strings.Join(rec.Header().Values("X-Trace"), ","); got != "a,b" {
				t.Fatalf("prefix %s: middleware order %q", tc.prefix, got)
			}
		}
	}
}
