// Package config reads settings from environment variables under a prefix
// such as WORTHIT_API_; malformed values are logged and replaced by the default
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"worthit/internal/platform/logger"
)

// Conf is a prefixed view over an environment, the process one unless Source says otherwise
type Conf struct {
	prefix string
	lookup func(string) (string, bool)
}

// New is the unprefixed view of the process environment
func New() Conf { return Conf{} }

// Prefix narrows c, so New().Prefix("WORTHIT_").Prefix("API_") reads WORTHIT_API_*
func (c Conf) Prefix(p string) Conf {
	c.prefix += p
	return c
}

// Source reads through lookup instead of the process environment; nil restores it
func (c Conf) Source(lookup func(string) (string, bool)) Conf {
	c.lookup = lookup
	return c
}

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) get(k string) string {
	lookup := c.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	v, _ := lookup(c.key(k))
	return strings.TrimSpace(v)
}

// may parses key, falling back to def when it is blank or does not parse
func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Err(err).Str("key", c.key(key)).Str("value", s).
			Str("default", fmt.Sprint(def)).Msg("invalid setting; using default")
		return def
	}
	return v
}

// MayString is the trimmed value or def
func (c Conf) MayString(key, def string) string {
	return may(c, key, def, func(s string) (string, error) { return s, nil })
}

func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration takes Go duration syntax such as 1500ms or 2s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayPort is a listen address; a bare port like 4000 becomes ":4000" and
// anything holding a colon passes through
func (c Conf) MayPort(key, def string) string {
	return may(c, key, def, func(s string) (string, error) {
		if strings.Contains(s, ":") {
			return s, nil
		}
		if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
			return "", fmt.Errorf("port %q out of range", s)
		}
		return ":" + s, nil
	})
}

// MayCSV splits a comma separated list, dropping blank items; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.get(key), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the allowed spelling of the value, matched without case, or def when blank
// a value outside allowed is a deployment mistake and panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
