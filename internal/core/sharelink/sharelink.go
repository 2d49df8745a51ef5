// Package sharelink encodes calculator inputs into a shareable query string
// and reads them back, dropping any field that does not validate
package sharelink

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"worthit/internal/core/worth"
)

// Query keys for the three inputs
const (
	KeyAutomation  = "a"
	KeyManual      = "m"
	KeyRepetitions = "r"
)

// maxRepetitions is the first count that no longer fits an int
const maxRepetitions = float64(math.MaxInt)

// Params are the raw input values as typed or shared; empty means absent
type Params struct {
	Automation  string `json:"automation_time" example:"60"`
	Manual      string `json:"manual_time"     example:"5"`
	Repetitions string `json:"repetitions"     example:"50"`
}

// Complete reports whether all three fields are present
func (p Params) Complete() bool {
	return p.Automation != "" && p.Manual != "" && p.Repetitions != ""
}

// Input converts the params to calculator input
// repetitions are truncated toward zero, so "2.5" reads as 2, and must fit an int
func (p Params) Input() (worth.Input, bool) {
	if !p.Complete() {
		return worth.Input{}, false
	}
	a, ok := worth.ParseNumber(p.Automation)
	if !ok {
		return worth.Input{}, false
	}
	m, ok := worth.ParseNumber(p.Manual)
	if !ok {
		return worth.Input{}, false
	}
	r, ok := worth.ParseNumber(p.Repetitions)
	if !ok || r >= maxRepetitions {
		return worth.Input{}, false
	}
	return worth.Input{AutomationTime: a, ManualTime: m, Repetitions: int(r)}, true
}

// FromInput formats calculator input as params in shortest round-trip form
func FromInput(in worth.Input) Params {
	return Params{
		Automation:  formatFloat(in.AutomationTime),
		Manual:      formatFloat(in.ManualTime),
		Repetitions: strconv.Itoa(in.Repetitions),
	}
}

// Encode returns the query string for p, e.g. "a=60&m=5&r=50"
func Encode(p Params) string {
	v := url.Values{}
	v.Set(KeyAutomation, p.Automation)
	v.Set(KeyManual, p.Manual)
	v.Set(KeyRepetitions, p.Repetitions)
	return v.Encode()
}

// ShareURL joins the origin and path of page with the encoded params
// any query or fragment already on page is replaced
func ShareURL(page *url.URL, p Params) string {
	q := Encode(p)
	if page == nil {
		return "?" + q
	}
	u := *page
	u.RawQuery = q
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}

// Decode reads params from a raw query string, with or without the leading "?"
// malformed pairs are skipped, so decoding never fails
func Decode(rawQuery string) Params {
	v, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	return FromValues(v)
}

// FromValues reads and validates params from already parsed values
func FromValues(v url.Values) Params {
	return Params{
		Automation:  keep(v.Get(KeyAutomation), 0, math.Inf(1)),
		Manual:      keep(v.Get(KeyManual), 0, math.Inf(1)),
		Repetitions: keep(v.Get(KeyRepetitions), 1, maxRepetitions),
	}
}

// keep returns raw when it is a finite number in [min, limit), else empty
func keep(raw string, min, limit float64) string {
	if raw == "" {
		return ""
	}
	n, ok := worth.ParseNumber(raw)
	if !ok || n < min || n >= limit {
		return ""
	}
	return raw
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
