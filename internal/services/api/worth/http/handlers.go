// Package http provides HTTP transport for the worth calculator API
package http

import (
	stdhttp "net/http"
	"net/url"

	"worthit/internal/core/i18n"
	"worthit/internal/core/locale"
	"worthit/internal/core/sharelink"
	"worthit/internal/modkit/httpkit"
	phttp "worthit/internal/platform/net/http"
	"worthit/internal/services/api/worth/domain"
	svc "worthit/internal/services/api/worth/service"

	"golang.org/x/text/language"
)

// Options tune how links and languages are resolved per request
type Options struct {
	// PublicURL is the page share links point at; empty derives it from the request
	PublicURL *url.URL
	// Language is used when neither ?lang nor Accept-Language match
	Language language.Tag
}

// Register mounts worth endpoints on the given router.
// GET takes the same a/m/r query a share link carries
func Register(r httpkit.Router, s *svc.Service, opt Options) {
	h := &handlers{svc: s, opt: opt}

	httpkit.Get(r, "/", h.evaluateQuery)
	httpkit.PostJSON[domain.ComputeInput](r, "/compute", h.compute)
	httpkit.PostJSON[domain.ShareInput](r, "/share", h.share)
	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
}

type handlers struct {
	svc *svc.Service
	opt Options
}

func (h *handlers) text(r *stdhttp.Request) *i18n.Text {
	return h.svc.Catalog.For(locale.FromRequest(r, h.opt.Language).Locale())
}

func (h *handlers) page(r *stdhttp.Request) *url.URL {
	return phttp.PageURL(r, h.opt.PublicURL, "/")
}

// swagger:route GET /worth Worth worthEvaluate
// @Summary Evaluate a share link query
// @Tags Worth
// @Produce json
// @Param a query number false "automation time in minutes"
// @Param m query number false "manual time per run in minutes"
// @Param r query integer false "repetitions"
// @Param lang query string false "language override (en, pl)"
// @Success 200 {object} domain.Evaluation "ok"
// @Router /worth [get]
func (h *handlers) evaluateQuery(r *stdhttp.Request) (any, error) {
	p := sharelink.FromValues(r.URL.Query())
	return h.svc.Evaluate(r.Context(), p, h.page(r), h.text(r)), nil
}

// swagger:route POST /worth/compute Worth worthCompute
// @Summary Evaluate JSON input
// @Tags Worth
// @Accept json
// @Produce json
// @Param payload body domain.ComputeInput true "Input"
// @Success 200 {object} domain.Evaluation "ok"
// @Router /worth/compute [post]
func (h *handlers) compute(r *stdhttp.Request, in domain.ComputeInput) (any, error) {
	return h.svc.Evaluate(r.Context(), in.Params(), h.page(r), h.text(r)), nil
}

// swagger:route POST /worth/share Worth worthShare
// @Summary Build a share link
// @Tags Worth
// @Accept json
// @Produce json
// @Param payload body domain.ShareInput true "Input"
// @Success 200 {object} domain.ShareOutput "ok"
// @Failure 400 {object} httpkit.Envelope "validation error"
// @Router /worth/share [post]
func (h *handlers) share(r *stdhttp.Request, in domain.ShareInput) (any, error) {
	return h.svc.Share(r.Context(), in, h.page(r))
}

// swagger:route POST /worth/check Worth worthCheck
// @Summary Validate one form value
// @Tags Worth
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Value"
// @Success 200 {object} domain.CheckOutput "ok"
// @Router /worth/check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Check(r.Context(), in, h.text(r)), nil
}
