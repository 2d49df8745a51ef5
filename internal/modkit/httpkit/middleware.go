package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"worthit/internal/platform/net/middleware"
)

// StackOptions tune the baseline stack from config
type StackOptions struct {
	// CORSOrigins lists allowed origins; empty allows any origin
	CORSOrigins []string
	// Slow marks requests at or above this duration as warn in the access log
	Slow time.Duration
	// Timeout cancels request contexts, 0 means 30s
	Timeout time.Duration
	// MaxInFlight caps concurrent requests with 429 beyond it, 0 means no cap
	MaxInFlight int
}

// Stack returns a baseline per module middleware slice
func Stack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	slow := o.Slow
	if slow == 0 {
		slow = 500 * time.Millisecond
	}
	mws := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: slow}),

		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: o.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			ExposedHeaders: []string{middleware.RequestIDHeader},
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
	if o.MaxInFlight > 0 {
		mws = append(mws, middleware.Throttle(o.MaxInFlight))
	}
	return mws
}
