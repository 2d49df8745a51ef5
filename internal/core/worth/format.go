package worth

import (
	"math"
	"strconv"
	"strings"
)

// FormatDuration renders a minute count compactly: 30s, 45min, 2h, 2h 5min
func FormatDuration(minutes float64) string {
	if minutes < 1 {
		return strconv.Itoa(int(roundHalfUp(minutes*60))) + "s"
	}

	hours, mins := carry(splitHours(minutes))
	if hours == 0 {
		return strconv.Itoa(mins) + "min"
	}
	if mins == 0 {
		return strconv.Itoa(hours) + "h"
	}
	return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "min"
}

// FieldKind selects the rule CheckField applies on top of "is a number"
type FieldKind uint8

const (
	// Number accepts any finite number
	Number FieldKind = iota
	// Positive requires a number greater than zero
	Positive
	// Integer requires a whole number
	Integer
)

// ParseFieldKind maps a wire name to a FieldKind, unknown names fall back to Number
func ParseFieldKind(s string) FieldKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return Positive
	case "integer":
		return Integer
	default:
		return Number
	}
}

// String implements fmt.Stringer
func (k FieldKind) String() string {
	switch k {
	case Positive:
		return "positive"
	case Integer:
		return "integer"
	default:
		return "number"
	}
}

// FieldIssue is the outcome of CheckField; IssueNone means the value is fine
type FieldIssue uint8

const (
	IssueNone FieldIssue = iota
	IssueRequired
	IssueNotNumber
	IssueNotPositive
	IssueNotWhole
)

// Key is the stable name used for message lookups and on the wire
func (i FieldIssue) Key() string {
	switch i {
	case IssueRequired:
		return "field_required"
	case IssueNotNumber:
		return "field_not_number"
	case IssueNotPositive:
		return "field_not_positive"
	case IssueNotWhole:
		return "field_not_whole"
	default:
		return ""
	}
}

// CheckField validates a raw form value for the given kind
func CheckField(value string, kind FieldKind) FieldIssue {
	value = strings.TrimSpace(value)
	if value == "" {
		return IssueRequired
	}
	v, ok := ParseNumber(value)
	if !ok {
		return IssueNotNumber
	}
	switch kind {
	case Positive:
		if v <= 0 {
			return IssueNotPositive
		}
	case Integer:
		if v != math.Trunc(v) {
			return IssueNotWhole
		}
	}
	return IssueNone
}

// ParseNumber parses a trimmed decimal number and rejects NaN and infinities
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !finite(v) {
		return 0, false
	}
	return v, true
}
