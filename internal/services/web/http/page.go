// Package http renders the calculator page
package http

import (
	"bytes"
	"embed"
	"html/template"
	stdhttp "net/http"
	"net/url"
	"time"

	"worthit/internal/core/i18n"
	"worthit/internal/core/locale"
	"worthit/internal/core/session"
	"worthit/internal/core/sharelink"
	"worthit/internal/modkit/httpkit"
	"worthit/internal/platform/logger"
	phttp "worthit/internal/platform/net/http"

	"golang.org/x/text/language"
)

//go:embed templates/page.html.tmpl
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/page.html.tmpl"))

// textKeys are the strings the template reads through .T
var textKeys = []i18n.Key{
	i18n.Title, i18n.HeroTitle, i18n.HeroSubtitle, i18n.FormulaTitle, i18n.Formula,
	i18n.InputTitle, i18n.ReadyToCalculate, i18n.FillInputs, i18n.Share, i18n.Copied,
	i18n.CopyFailed, i18n.FooterText, i18n.ThemeToggle,
}

// Options configure the page
type Options struct {
	Catalog *i18n.Catalog
	// PublicURL is where share links point; empty derives it from the request
	PublicURL *url.URL
	// Language is used when neither ?lang nor Accept-Language match
	Language language.Tag
	// AckDuration is how long the copy button shows its acknowledgment
	AckDuration time.Duration
}

// Register mounts the page on r
func Register(r httpkit.Router, opt Options) {
	if opt.Catalog == nil {
		opt.Catalog = i18n.Default()
	}
	h := &handlers{opt: opt}
	r.Get("/", h.index)
}

type handlers struct{ opt Options }

type fieldView struct {
	Key   string
	Label string
	Value string
	Issue string
	Min   string
	Step  string
}

type resultView struct {
	IsWorth    bool
	Verdict    string
	Headline   string
	Amount     string
	Clock      string
	Efficiency string
}

type langView struct {
	Tag     string
	URL     string
	Current bool
}

type pageView struct {
	Lang      string
	Theme     session.Theme
	T         map[string]string
	Action    string
	Fields    []fieldView
	Result    *resultView
	ShareURL  string
	ThemeURL  string
	Languages []langView
	AckMillis int64
}

func (h *handlers) index(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	q := r.URL.Query()
	s := session.New(session.Options{
		Locale:      locale.FromRequest(r, h.opt.Language),
		Catalog:     h.opt.Catalog,
		Theme:       session.ParseTheme(q.Get("theme")),
		AckDuration: h.opt.AckDuration,
	})
	defer s.Close()
	s.Load(sharelink.FromValues(q))

	target := phttp.PageURL(r, h.opt.PublicURL, r.URL.Path)
	v := h.view(s, r.URL, target)

	var buf bytes.Buffer
	if err := page.Execute(&buf, v); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("web: render page")
		stdhttp.Error(w, stdhttp.StatusText(stdhttp.StatusInternalServerError), stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func (h *handlers) view(s *session.Session, cur *url.URL, target *url.URL) pageView {
	text := s.Text()
	v := pageView{
		Lang:      text.Lang(),
		Theme:     s.Theme(),
		T:         make(map[string]string, len(textKeys)),
		Action:    cur.Path,
		AckMillis: s.AckDuration().Milliseconds(),
	}
	for _, k := range textKeys {
		v.T[string(k)] = text.T(k)
	}

	for _, f := range session.Fields {
		fv := fieldView{
			Key:   f.Key(),
			Label: text.T(f.Label()),
			Value: s.Value(f),
			Issue: text.Issue(s.Issue(f)),
			Min:   "0",
			Step:  "any",
		}
		if f == session.Repetitions {
			fv.Min, fv.Step = "1", "1"
		}
		v.Fields = append(v.Fields, fv)
	}

	if res, ok := s.Result(); ok {
		v.Result = &resultView{
			IsWorth:    res.IsWorth,
			Verdict:    text.Verdict(res),
			Headline:   text.Headline(res),
			Amount:     text.Amount(res),
			Clock:      text.Clock(res),
			Efficiency: text.EfficiencyLine(res),
		}
		v.ShareURL = s.ShareURL(target)
	}

	v.ThemeURL = withQuery(cur, "theme", string(s.Theme().Toggle()))
	for _, tag := range []language.Tag{locale.Primary, locale.Secondary} {
		code := tag.String()
		v.Languages = append(v.Languages, langView{
			Tag:     code,
			URL:     withQuery(cur, "lang", code),
			Current: code == v.Lang,
		})
	}
	return v
}

// withQuery is the relative link to cur with one query key replaced
func withQuery(cur *url.URL, key, value string) string {
	q := cur.Query()
	q.Set(key, value)
	return (&url.URL{Path: cur.Path, RawQuery: q.Encode()}).String()
}
