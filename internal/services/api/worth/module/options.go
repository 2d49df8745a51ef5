package module

import (
	"net/http"
	"net/url"

	"worthit/internal/core/locale"
	modkit "worthit/internal/modkit"
	"worthit/internal/modkit/httpkit"
	"worthit/internal/platform/config"
	"worthit/internal/platform/logger"

	"golang.org/x/text/language"
)

// Option is a configuration option for the worth module
type Option = modkit.Option

// Settings are the worth module knobs read from the environment
type Settings struct {
	PublicURL *url.URL
	Language  language.Tag
}

// FromConfig reads PUBLIC_URL and DEFAULT_LANG under the caller's prefix
// a malformed public URL is logged and ignored
func FromConfig(c config.Conf) Settings {
	s := Settings{Language: locale.Parse(c.MayEnum("DEFAULT_LANG", "en", "en", "pl"))}
	if raw := c.MayString("PUBLIC_URL", ""); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			logger.Named("worth").Warn().Str("value", raw).Msg("ignoring invalid PUBLIC_URL")
		} else {
			s.PublicURL = u
		}
	}
	return s
}

// WithPrefix sets the route prefix for the module
func WithPrefix(prefix string) Option { return modkit.WithPrefix(prefix) }

// WithMiddlewares sets the middlewares for the module
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return modkit.WithMiddlewares(mw...)
}

// WithRegister adds extra routes next to the module's own
func WithRegister(fn func(httpkit.Router)) Option { return modkit.WithRegister(fn) }
