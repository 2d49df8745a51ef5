// Package bind decodes request bodies and validates them with validator tags,
// naming fields by their json tag so errors point at what the caller sent
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"

	perr "worthit/internal/platform/errors"
	"worthit/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator pairs the validator with its english translator
type Validator struct {
	*validator.Validate
	trans ut.Translator
}

// shorter than the stock english messages
var messages = map[string]string{
	"min":      "{0} must be at least {1}",
	"max":      "{0} must be at most {1}",
	"gte":      "{0} must be {1} or greater",
	"page_url": "{0} must be an absolute http or https URL",
}

// Get returns the shared validator, built on first use
var Get = sync.OnceValue(func() *Validator {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterValidation("page_url", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && IsPageURL(s)
	})
	for tag, text := range messages {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return &Validator{Validate: v, trans: trans}
})

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// FieldAndMessage returns the first failing field and its english message
// errors that did not come from validation pass through with no field
func (v *Validator) FieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return "", ""
	case errors.As(err, &verrs) && len(verrs) > 0:
		return verrs[0].Field(), verrs[0].Translate(v.trans)
	}
	return "", err.Error()
}

// IsPageURL reports whether s is an absolute http or https URL with a host
func IsPageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

type options struct {
	maxBytes     int64
	allowUnknown bool
}

// Option tunes ParseJSON
type Option func(*options)

// MaxBytes caps the body; 0 lifts the cap
func MaxBytes(n int64) Option { return func(o *options) { o.maxBytes = n } }

// AllowUnknown accepts fields T does not declare
func AllowUnknown() Option { return func(o *options) { o.allowUnknown = true } }

// ParseJSON decodes exactly one JSON value from the body into T and validates it
// decode failures are JSON-coded, tag failures are Validation-coded with a field
func ParseJSON[T any](r *http.Request, opts ...Option) (T, error) {
	var zero T
	o := options{maxBytes: 1 << 20}
	for _, opt := range opts {
		opt(&o)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	var body io.Reader = r.Body
	if o.maxBytes > 0 {
		body = io.LimitReader(body, o.maxBytes)
	}
	dec := json.NewDecoder(body)
	if !o.allowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	v := Get()
	if err := v.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := v.FieldAndMessage(err)
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}
