// Package swaggerkit serves Swagger UI and the OpenAPI document for the JSON API
package swaggerkit

import (
	"net/http"

	"worthit/internal/modkit/httpkit"
	phttp "worthit/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where Swagger UI lives; the document is DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount serves the docs for the current API version when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	docURL := DocsPath + "/doc.json"
	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(docURL, serveDocJSON(httpkit.APIPrefix(httpkit.APIVersion)))
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docURL),
	))
}
