package middleware

import (
	"net/http"
	"strings"

	"worthit/internal/platform/logger"
	pnet "worthit/internal/platform/net"

	"github.com/google/uuid"
)

// RequestIDHeader is read from and echoed to clients
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds ids accepted from upstream proxies
const maxRequestIDLen = 128

var newRequestID = uuid.NewString // seam

// RequestID propagates an inbound X-Request-ID or mints a uuid, stores it
// on the context for responders and loggers, and echoes it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > maxRequestIDLen {
				id = newRequestID()
			}
			ctx := pnet.WithRequest(r.Context(), id)
			ctx = logger.WithRequest(ctx, id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
