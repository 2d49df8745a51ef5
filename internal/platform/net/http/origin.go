package http

import (
	stdhttp "net/http"
	"net/url"
	"strings"
)

// PageURL is the absolute URL of the page a request targets
// public, when set, wins over anything derived from the request so links
// stay stable behind proxies; otherwise forwarded headers are honored
func PageURL(r *stdhttp.Request, public *url.URL, path string) *url.URL {
	if public != nil && public.Host != "" {
		u := *public
		if u.Path == "" {
			u.Path = "/"
		}
		u.RawQuery, u.Fragment = "", ""
		return &u
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := firstValue(r.Header.Get("X-Forwarded-Proto")); p == "http" || p == "https" {
		scheme = p
	}
	host := r.Host
	if h := firstValue(r.Header.Get("X-Forwarded-Host")); h != "" {
		host = h
	}
	if path == "" {
		path = "/"
	}
	return &url.URL{Scheme: scheme, Host: host, Path: path}
}

func firstValue(h string) string {
	if i := strings.IndexByte(h, ','); i >= 0 {
		h = h[:i]
	}
	return strings.ToLower(strings.TrimSpace(h))
}
