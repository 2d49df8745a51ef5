// Package middleware is the HTTP middleware the API and page are served behind
// chi and go-chi/cors stay behind these constructors
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware wraps one handler in another
type Middleware = func(http.Handler) http.Handler

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// NoCache keeps computed results out of browser and proxy caches
func NoCache() Middleware { return chimw.NoCache }

// RedirectSlashes sends /worth/ to /worth with a redirect
func RedirectSlashes() Middleware { return chimw.RedirectSlashes }

// StripSlashes routes /worth/ as /worth without a redirect
func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout cancels the request context after d and answers 504 if nothing was written
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Throttle answers 429 once limit requests are in flight
func Throttle(limit int) Middleware { return chimw.Throttle(limit) }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// AllowContentType answers 415 to bodies of other types; bodiless requests pass
func AllowContentType(types ...string) Middleware { return chimw.AllowContentType(types...) }

// Compress gzips or deflates responses at level for clients that accept it
func Compress(level int) Middleware { return chimw.NewCompressor(level).Handler }

// CORSOptions is the part of go-chi/cors the API sets; empty lists take defaults
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

var (
	corsMethods = []string{"GET", "POST", "OPTIONS"}
	corsHeaders = []string{"Accept", "Accept-Language", "Content-Type", RequestIDHeader}
)

// CORS answers preflights and tags responses for the allowed origins
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins:   o.AllowedOrigins,
		AllowedMethods:   orDefault(o.AllowedMethods, corsMethods),
		AllowedHeaders:   orDefault(o.AllowedHeaders, corsHeaders),
		ExposedHeaders:   o.ExposedHeaders,
		AllowCredentials: o.AllowCredentials,
		MaxAge:           o.MaxAge,
	})
}

func orDefault(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
