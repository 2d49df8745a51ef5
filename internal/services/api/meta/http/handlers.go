// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"worthit/internal/core/i18n"
	"worthit/internal/core/locale"
	"worthit/internal/core/version"
	"worthit/internal/modkit/httpkit"

	"golang.org/x/text/language"
)

// Check is one named readiness check; a nil error means ok
type Check struct {
	Name string
	Run  func() error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Catalog     *i18n.Catalog
	Checks      []Check
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/languages", h.languages)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"worthit-api"`
	Started string `json:"started"  example:"2026-10-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"i18n"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"no translator for pl"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"worthit-api"`
	Started string `json:"started" example:"2026-10-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// Language is one supported UI language
type Language struct {
	Tag   string `json:"tag"   example:"pl"`
	Title string `json:"title" example:"czy warto to zautomatyzować?"`
}

// LanguagesResponse lists the UI languages, default first
type LanguagesResponse struct {
	Default   string     `json:"default"   example:"en"`
	Languages []Language `json:"languages"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness check
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	overall := "ok"
	checks := make([]ReadyCheck, 0, len(h.deps.Checks))
	for _, c := range h.deps.Checks {
		rc := ReadyCheck{Name: c.Name, Status: "ok"}
		if err := c.Run(); err != nil {
			rc.Status, rc.Error = "fail", err.Error()
			overall = "fail"
		}
		checks = append(checks, rc)
	}
	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/languages Meta metaLanguages
// @Summary Supported UI languages
// @Tags Meta
// @Produce json
// @Success 200 {object} LanguagesResponse "ok"
// @Router /meta/languages [get]
func (h *handlers) languages(_ *http.Request) (any, error) {
	cat := h.deps.Catalog
	if cat == nil {
		cat = i18n.Default()
	}
	out := LanguagesResponse{Default: locale.Primary.String()}
	for _, tag := range []language.Tag{locale.Primary, locale.Secondary} {
		t := cat.For(tag)
		out.Languages = append(out.Languages, Language{Tag: t.Lang(), Title: t.T(i18n.HeroTitle)})
	}
	return out, nil
}
