// Package worth decides whether automating a repetitive task pays off
// by comparing total manual time against the one-time automation cost.
package worth

import "math"

// Input holds the three calculator inputs, all times in minutes
type Input struct {
	AutomationTime float64 `json:"automation_time" example:"60"`
	ManualTime     float64 `json:"manual_time"     example:"5"`
	Repetitions    int     `json:"repetitions"     example:"50"`
}

// Valid reports whether the input can produce a result
func (in Input) Valid() bool {
	if !finite(in.AutomationTime) || !finite(in.ManualTime) {
		return false
	}
	return in.AutomationTime >= 0 && in.ManualTime >= 0 && in.Repetitions >= 1
}

// Result is the derived comparison for one input set
// Hours and Minutes decompose TimeDifference the same way the web calculator
// always did: hours are floored and the remainder is rounded on its own, so
// Minutes can read 60. Use Clock for display.
type Result struct {
	IsWorth           bool    `json:"is_worth"            example:"true"`
	TimeDifference    float64 `json:"time_difference"     example:"190"`
	Hours             int     `json:"hours"               example:"3"`
	Minutes           int     `json:"minutes"             example:"10"`
	TotalManualTime   float64 `json:"total_manual_time"   example:"250"`
	AutomationTime    float64 `json:"automation_time"     example:"60"`
	EfficiencyPercent float64 `json:"efficiency_percent"  example:"76"`
}

// Compute returns the comparison for in, or false when in is not computable
func Compute(in Input) (Result, bool) {
	if !in.Valid() {
		return Result{}, false
	}

	total := in.ManualTime * float64(in.Repetitions)
	diff := math.Abs(total - in.AutomationTime)
	if !finite(total) {
		return Result{}, false
	}

	hours, minutes := splitHours(diff)
	return Result{
		IsWorth:           in.AutomationTime <= total,
		TimeDifference:    diff,
		Hours:             hours,
		Minutes:           minutes,
		TotalManualTime:   total,
		AutomationTime:    in.AutomationTime,
		EfficiencyPercent: efficiency(total, in.AutomationTime),
	}, true
}

// Clock returns the difference as hours and minutes with a rounded 60
// carried into the hour
func (r Result) Clock() (hours, minutes int) {
	return carry(r.Hours, r.Minutes)
}

// efficiency is the signed share of total manual time saved
// a zero total has nothing to save and reports 0
func efficiency(total, automation float64) float64 {
	if total == 0 {
		return 0
	}
	return (total - automation) / total * 100
}

// maxHours leaves room for one carried hour
const maxHours = math.MaxInt - 1

// splitHours floors v/60 and rounds the remainder on its own
// hours that do not fit an int saturate at maxHours with zero minutes
func splitHours(v float64) (hours, minutes int) {
	h := math.Floor(v / 60)
	if h >= float64(maxHours) {
		return maxHours, 0
	}
	return int(h), int(roundHalfUp(math.Mod(v, 60)))
}

func carry(hours, minutes int) (int, int) {
	if minutes >= 60 {
		hours += minutes / 60
		minutes %= 60
	}
	return hours, minutes
}

// roundHalfUp rounds .5 towards +Inf, matching browser rounding for the
// non-negative remainders we feed it
func roundHalfUp(v float64) float64 { return math.Floor(v + 0.5) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
