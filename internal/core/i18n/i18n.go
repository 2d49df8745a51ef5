// Package i18n holds the two text packs and renders results with
// locale-aware number formatting
package i18n

import (
	"fmt"
	"sync"

	"worthit/internal/core/locale"
	"worthit/internal/core/worth"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pl"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// Catalog owns the translators for every supported language
type Catalog struct {
	uni *ut.UniversalTranslator
}

var (
	defOnce sync.Once
	defCat  *Catalog
)

// Default returns a process-wide catalog built on first use
// the packs are static, so a build failure is a programming error
func Default() *Catalog {
	defOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(fmt.Sprintf("i18n: %v", err))
		}
		defCat = c
	})
	return defCat
}

// New builds a catalog with the english and polish packs registered
func New() (*Catalog, error) {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc, pl.New())

	for _, reg := range []struct {
		loc  locales.Translator
		pack pack
	}{
		{enLoc, english},
		{pl.New(), polish},
	} {
		tr, ok := uni.GetTranslator(reg.loc.Locale())
		if !ok {
			return nil, fmt.Errorf("no translator for %s", reg.loc.Locale())
		}
		for k, v := range reg.pack {
			if err := tr.Add(k, v, false); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", reg.loc.Locale(), k, err)
			}
		}
	}
	return &Catalog{uni: uni}, nil
}

// For returns the text set for tag, folding unsupported tags to the primary pack
func (c *Catalog) For(tag language.Tag) *Text {
	tag = locale.Normalize(tag)
	base, _ := tag.Base()
	tr, ok := c.uni.GetTranslator(base.String())
	if !ok {
		tr = c.uni.GetFallback()
	}
	return &Text{Tag: tag, tr: tr}
}

// Text is one language's view of the catalog
type Text struct {
	Tag language.Tag
	tr  ut.Translator
}

// Lang is the short language code, e.g. "en"
func (t *Text) Lang() string {
	base, _ := t.Tag.Base()
	return base.String()
}

// T returns the string for key, or the key itself when it is unknown
func (t *Text) T(key Key, params ...string) string {
	s, err := t.tr.T(key, params...)
	if err != nil {
		return string(key)
	}
	return s
}

// Number formats v with the locale's separators and the given decimals
func (t *Text) Number(v float64, decimals uint64) string {
	return t.tr.FmtNumber(v, decimals)
}

// Issue returns the localized message for a field issue, "" when there is none
func (t *Text) Issue(i worth.FieldIssue) string {
	if i == worth.IssueNone {
		return ""
	}
	return t.T(Key(i.Key()))
}

// Verdict is "worth it" or "not worth it"
func (t *Text) Verdict(r worth.Result) string {
	if r.IsWorth {
		return t.T(WorthResult)
	}
	return t.T(NotWorthResult)
}

// Headline is "time saved:" or "time wasted:"
func (t *Text) Headline(r worth.Result) string {
	if r.IsWorth {
		return t.T(TimeSaved)
	}
	return t.T(TimeLost)
}

// Amount renders the difference with one decimal, e.g. "190.0 min"
func (t *Text) Amount(r worth.Result) string {
	return t.Number(r.TimeDifference, 1) + " " + t.T(Minutes)
}

// Clock renders the carried hour/minute split, e.g. "3h 10min"
func (t *Text) Clock(r worth.Result) string {
	h, m := r.Clock()
	return fmt.Sprintf("%d%s %d%s", h, t.T(Hours), m, t.T(Minutes))
}

// EfficiencyLine renders the signed efficiency with one decimal
func (t *Text) EfficiencyLine(r worth.Result) string {
	return t.T(Efficiency, t.Number(r.EfficiencyPercent, 1))
}

// Summary is the one-line plain text form used by the CLI and API
func (t *Text) Summary(r worth.Result) string {
	return fmt.Sprintf("%s: %s %s (%s)", t.Verdict(r), t.Headline(r), t.Amount(r), t.Clock(r))
}
