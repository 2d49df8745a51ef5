// Package session is the state behind one calculator view: the three raw
// inputs, the derived result, the theme, the language and the copy
// acknowledgment. Every surface builds its own Session; nothing is global
package session

import (
	"context"
	"net/url"
	"strings"
	"time"

	"worthit/internal/core/clipboard"
	"worthit/internal/core/i18n"
	"worthit/internal/core/locale"
	"worthit/internal/core/sharelink"
	"worthit/internal/core/worth"
)

// Theme is the light or dark color scheme
type Theme string

// Supported themes
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme reads a theme name, anything but "dark" is Light
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(Dark)) {
		return Dark
	}
	return Light
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Field names one of the three inputs
type Field uint8

// Input fields in form order
const (
	Automation Field = iota
	Manual
	Repetitions
)

// Fields lists the inputs in the order they are filled in
var Fields = []Field{Automation, Manual, Repetitions}

// Key is the share-link key for f
func (f Field) Key() string {
	switch f {
	case Manual:
		return sharelink.KeyManual
	case Repetitions:
		return sharelink.KeyRepetitions
	default:
		return sharelink.KeyAutomation
	}
}

// Label is the localized label key for f
func (f Field) Label() i18n.Key {
	switch f {
	case Manual:
		return i18n.ManualLabel
	case Repetitions:
		return i18n.RepetitionsLabel
	default:
		return i18n.AutomationLabel
	}
}

// Kind is the rule the field is checked with
func (f Field) Kind() worth.FieldKind {
	if f == Repetitions {
		return worth.Integer
	}
	return worth.Number
}

// Options configure a Session; zero values pick sensible defaults
type Options struct {
	Locale      locale.Provider
	Catalog     *i18n.Catalog
	Theme       Theme
	Clipboard   clipboard.Writer
	AckDuration time.Duration
}

// Session holds the state of one calculator view
type Session struct {
	text   *i18n.Text
	theme  Theme
	clip   clipboard.Writer
	ackFor time.Duration

	params   sharelink.Params
	result   worth.Result
	computed bool
	copied   clipboard.Flag
}

// New builds a Session with empty inputs
func New(opt Options) *Session {
	cat := opt.Catalog
	if cat == nil {
		cat = i18n.Default()
	}
	tag := locale.Primary
	if opt.Locale != nil {
		tag = opt.Locale.Locale()
	}
	theme := opt.Theme
	if theme == "" {
		theme = Light
	}
	clip := opt.Clipboard
	if clip == nil {
		clip = clipboard.Nop{}
	}
	ack := opt.AckDuration
	if ack <= 0 {
		ack = clipboard.AckDuration
	}
	return &Session{text: cat.For(tag), theme: theme, clip: clip, ackFor: ack}
}

// Text is the session's localized text set
func (s *Session) Text() *i18n.Text { return s.text }

// Theme is the current theme
func (s *Session) Theme() Theme { return s.theme }

// ToggleTheme flips between light and dark and returns the new theme
func (s *Session) ToggleTheme() Theme {
	s.theme = s.theme.Toggle()
	return s.theme
}

// Load replaces all inputs, e.g. from a decoded share link
func (s *Session) Load(p sharelink.Params) {
	s.params = p
	s.recompute()
}

// Set changes one input and recomputes
func (s *Session) Set(f Field, value string) {
	value = strings.TrimSpace(value)
	switch f {
	case Automation:
		s.params.Automation = value
	case Manual:
		s.params.Manual = value
	case Repetitions:
		s.params.Repetitions = value
	}
	s.recompute()
}

// Value returns the raw value of one input
func (s *Session) Value(f Field) string {
	switch f {
	case Manual:
		return s.params.Manual
	case Repetitions:
		return s.params.Repetitions
	default:
		return s.params.Automation
	}
}

// Issue checks one input; an empty input has no issue yet
func (s *Session) Issue(f Field) worth.FieldIssue {
	v := s.Value(f)
	if v == "" {
		return worth.IssueNone
	}
	return worth.CheckField(v, f.Kind())
}

// Params returns the raw inputs
func (s *Session) Params() sharelink.Params { return s.params }

// Result returns the current result, false while inputs are incomplete or invalid
func (s *Session) Result() (worth.Result, bool) { return s.result, s.computed }

// ShareURL is the link that reproduces this session's inputs on page
func (s *Session) ShareURL(page *url.URL) string {
	return sharelink.ShareURL(page, s.params)
}

// Share copies the share link to the clipboard
// it reports false when there is no result to share or the copy failed
func (s *Session) Share(ctx context.Context, page *url.URL) bool {
	if !s.computed {
		return false
	}
	return clipboard.Copy(ctx, s.clip, s.ShareURL(page), &s.copied, s.ackFor)
}

// Clipboard is the writer Share copies with
func (s *Session) Clipboard() clipboard.Writer { return s.clip }

// MarkCopied raises the copied acknowledgment for a copy done elsewhere
func (s *Session) MarkCopied() { s.copied.Raise(s.ackFor) }

// AckDuration is how long a successful Share stays acknowledged
func (s *Session) AckDuration() time.Duration { return s.ackFor }

// Copied reports whether a recent Share is still acknowledged
func (s *Session) Copied() bool { return s.copied.On() }

// ClearCopied ends the copied acknowledgment now
func (s *Session) ClearCopied() { s.copied.Clear() }

// Close cancels the pending acknowledgment reset
func (s *Session) Close() { s.ClearCopied() }

func (s *Session) recompute() {
	in, ok := s.params.Input()
	if !ok {
		s.result, s.computed = worth.Result{}, false
		return
	}
	s.result, s.computed = worth.Compute(in)
}
