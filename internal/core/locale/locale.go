// Package locale picks one of the supported text languages from host or
// request signals. Callers depend on Provider so tests never touch the real
// system locale
package locale

import (
	"net/http"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Supported tags; the first one is the fallback
var (
	Primary   = language.English
	Secondary = language.Polish
)

// Warsaw is the timezone that selects the secondary language on its own
const Warsaw = "Europe/Warsaw"

var matcher = language.NewMatcher([]language.Tag{Primary, Secondary})

// Provider returns the language to render text in
type Provider interface {
	Locale() language.Tag
}

// Func adapts a plain function to Provider
type Func func() language.Tag

// Locale implements Provider
func (f Func) Locale() language.Tag { return f() }

// Fixed always returns the same supported tag
type Fixed language.Tag

// Locale implements Provider
func (f Fixed) Locale() language.Tag { return Normalize(language.Tag(f)) }

// Normalize folds any tag to one of the two supported tags
func Normalize(t language.Tag) language.Tag {
	base, _ := t.Base()
	sb, _ := Secondary.Base()
	if base == sb {
		return Secondary
	}
	return Primary
}

// Parse reads a language name like "pl", "pl-PL" or "en_US"; unknown or
// empty input falls back to Primary
func Parse(s string) language.Tag {
	s = strings.TrimSpace(s)
	if s == "" {
		return Primary
	}
	// POSIX locales look like pl_PL.UTF-8
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	t, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return Primary
	}
	return Normalize(t)
}

// Detect applies the language-or-timezone heuristic
// the secondary language wins if either signal points to it
func Detect(lang, timezone string) language.Tag {
	if strings.TrimSpace(timezone) == Warsaw {
		return Secondary
	}
	return Parse(lang)
}

// Env reads the host locale from the usual environment variables
// Lookup defaults to os.Getenv
type Env struct {
	Lookup func(string) string
}

// Locale implements Provider
func (e Env) Locale() language.Tag {
	get := e.Lookup
	if get == nil {
		get = os.Getenv
	}
	lang := ""
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(get(k)); v != "" && v != "C" && v != "POSIX" {
			lang = v
			break
		}
	}
	return Detect(lang, get("TZ"))
}

// Header picks the best match for an Accept-Language header
type Header struct {
	AcceptLanguage string
	// Override wins over the header when it names a language (e.g. ?lang=pl)
	Override string
	// Fallback is used when neither the override nor the header matches
	Fallback language.Tag
}

// FromRequest builds a Header provider from r, honoring a "lang" query override
func FromRequest(r *http.Request, fallback language.Tag) Header {
	return Header{
		AcceptLanguage: r.Header.Get("Accept-Language"),
		Override:       r.URL.Query().Get("lang"),
		Fallback:       fallback,
	}
}

// Locale implements Provider
func (h Header) Locale() language.Tag {
	if o := strings.TrimSpace(h.Override); o != "" {
		if t, err := language.Parse(o); err == nil {
			return Normalize(t)
		}
	}
	if strings.TrimSpace(h.AcceptLanguage) == "" {
		return h.fallback()
	}
	tags, _, err := language.ParseAcceptLanguage(h.AcceptLanguage)
	if err != nil || len(tags) == 0 {
		return h.fallback()
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return h.fallback()
	}
	if idx == 1 {
		return Secondary
	}
	return Primary
}

func (h Header) fallback() language.Tag {
	if h.Fallback == language.Und {
		return Primary
	}
	return Normalize(h.Fallback)
}
