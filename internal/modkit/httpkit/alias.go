// Package httpkit is what service modules mount their routes with,
// so they never import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "worthit/internal/platform/net/http"
)

type (
	// Router is the route facade modules mount on
	Router = phttp.Router
	// Handler is a plain net/http handler func
	Handler = phttp.Handler
	// Envelope is the reply body, named in route docs
	Envelope = phttp.Envelope
)

// JSON binds and validates the body into T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler { return phttp.JSONHandler(fn) }

// Call serves fn's result without reading a body
func Call(fn func(*http.Request) (any, error)) Handler { return phttp.JSONHandlerNoBody(fn) }

// Get mounts a body-less JSON handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// PostJSON mounts a validated JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}
