package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"worthit/internal/core/version"
	perr "worthit/internal/platform/errors"
	phttp "worthit/internal/platform/net/http"
)

//go:embed openapi.json
var openapiDoc string

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return openapiDoc }

const exampleRequestID = "0b8f5c3e-2f5d-4a53-9c1e-6f0e8d1f2a7b"

// serveDocJSON serves the embedded OpenAPI document with the build version,
// the API base URL and the shared error responses filled in
func serveDocJSON(apiBase string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var doc map[string]any
		if err := json.Unmarshal([]byte(docReader()), &doc); err != nil {
			http.Error(w, "openapi document parse error", http.StatusInternalServerError)
			return
		}
		enrich(doc, apiBase)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

func enrich(doc map[string]any, apiBase string) {
	if _, ok := doc["servers"]; !ok {
		doc["servers"] = []any{map[string]any{"url": apiBase}}
	}
	if info, ok := doc["info"].(map[string]any); ok {
		info["version"] = version.Info("worthit-api").Version
	}
	child(child(doc, "components"), "schemas")["ErrorResponse"] = errorSchema

	internal := errorResponse("Internal Server Error", perr.PanicErrf("panic recovered"))
	invalid := errorResponse("Bad Request",
		perr.WithField(perr.New(perr.ErrorCodeValidation, "repetitions must be at least 1"), "repetitions"))

	paths, _ := doc["paths"].(map[string]any)
	for _, p := range paths {
		ops, _ := p.(map[string]any)
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			setDefault(responses, "500", internal)
			if _, hasBody := op["requestBody"]; hasBody {
				setDefault(responses, "400", invalid)
			}
		}
	}
}

// errorSchema mirrors phttp.Envelope on the error path
var errorSchema = map[string]any{
	"type":        "object",
	"description": "Standard error response",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

// errorResponse documents err with the exact envelope the API writes for it
func errorResponse(description string, err error) map[string]any {
	_, env := phttp.ErrorEnvelope(err, exampleRequestID)
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": env,
			},
		},
	}
}

// child returns m[key] as an object, creating it when missing
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func setDefault(m map[string]any, key string, v any) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}
