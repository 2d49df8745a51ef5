package httpkit

import (
	"net/http"
	"strings"
)

// APIVersion is the published JSON API version
const APIVersion = "v1"

// APIPrefix is where a version of the JSON API lives, e.g. "/api/v1"
func APIPrefix(version string) string {
	return "/api/" + strings.Trim(version, "/")
}

// MountUnder mounts a subrouter at prefix and applies per-module middlewares
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI mounts the modules of one API version behind a shared stack
//
//	httpkit.MountAPI(r, httpkit.APIVersion, stack, func(api httpkit.Router) {
//	  worth.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIPrefix(version), mw, mount)
}
