// Package raw reads bootstrap settings straight from the environment
// the logger configures itself through it, so nothing here may log
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Env is a view over the variables that share a prefix such as "LOG_"
type Env string

// Under returns the view for prefix
func Under(prefix string) Env { return Env(prefix) }

// Lookup reports the trimmed value of key and whether it is set to anything
func (e Env) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(string(e) + key))
	return v, v != ""
}

// String returns the value of key, or def when it is unset or blank
func (e Env) String(key, def string) string {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return def
}

// Bool treats 1, true, yes and on as true and any other value as false
func (e Env) Bool(key string, def bool) bool {
	v, ok := e.Lookup(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Int returns a non-negative decimal value, or def for anything else
func (e Env) Int(key string, def int) int {
	v, ok := e.Lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
