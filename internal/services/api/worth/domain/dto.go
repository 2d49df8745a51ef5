// Package domain holds DTOs for the worth http and service contracts
package domain

import (
	"worthit/internal/core/sharelink"
	"worthit/internal/core/worth"
)

// ComputeInput is the JSON form of the three inputs; absent fields are allowed
// and simply leave the evaluation not computable
type ComputeInput struct {
	AutomationTime *float64 `json:"automation_time,omitempty" example:"60"`
	ManualTime     *float64 `json:"manual_time,omitempty"     example:"5"`
	Repetitions    *int     `json:"repetitions,omitempty"     example:"50"`
}

// ShareInput asks for a share link; unlike ComputeInput every field must be valid
type ShareInput struct {
	AutomationTime *float64 `json:"automation_time" validate:"required,gte=0"             example:"60"`
	ManualTime     *float64 `json:"manual_time"     validate:"required,gte=0"             example:"5"`
	Repetitions    *int     `json:"repetitions"     validate:"required,min=1"             example:"50"`
	BaseURL        string   `json:"base_url,omitempty" validate:"omitempty,page_url" example:"https://worth.example/"`
}

// ShareOutput is the link plus the query it carries
type ShareOutput struct {
	URL   string `json:"url"   example:"https://worth.example/?a=60&m=5&r=50"`
	Query string `json:"query" example:"a=60&m=5&r=50"`
}

// CheckInput validates one raw form value
type CheckInput struct {
	Value string `json:"value" example:"2.5"`
	Kind  string `json:"kind,omitempty" validate:"omitempty,oneof=number positive integer" example:"integer"`
}

// CheckOutput reports the field issue, if any
type CheckOutput struct {
	Valid   bool   `json:"valid"             example:"false"`
	Code    string `json:"code,omitempty"    example:"field_not_whole"`
	Message string `json:"message,omitempty" example:"Must be a whole number"`
}

// Clock is the carried hour and minute split of the difference
type Clock struct {
	Hours   int `json:"hours"   example:"3"`
	Minutes int `json:"minutes" example:"10"`
}

// Text carries the localized strings a client needs to render a result
type Text struct {
	Verdict    string `json:"verdict"    example:"worth it"`
	Headline   string `json:"headline"   example:"time saved:"`
	Amount     string `json:"amount"     example:"190.0 min"`
	Clock      string `json:"clock"      example:"3h 10min"`
	Efficiency string `json:"efficiency" example:"efficiency: 76.0%"`
	Summary    string `json:"summary"    example:"worth it: time saved: 190.0 min (3h 10min)"`
}

// Evaluation is the response for both the query and JSON evaluate endpoints
type Evaluation struct {
	Lang       string           `json:"lang"       example:"en"`
	Input      sharelink.Params `json:"input"`
	Computable bool             `json:"computable" example:"true"`
	Result     *worth.Result    `json:"result"`
	Clock      *Clock           `json:"clock,omitempty"`
	Duration   string           `json:"duration,omitempty"  example:"3h 10min"`
	Text       *Text            `json:"text,omitempty"`
	ShareURL   string           `json:"share_url,omitempty" example:"https://worth.example/?a=60&m=5&r=50"`
	// Placeholder is shown instead of a result while inputs are incomplete
	Placeholder string `json:"placeholder,omitempty" example:"fill out the numbers to see if it's worth it"`
}

// Params converts the JSON input to raw share params
func (in ComputeInput) Params() sharelink.Params {
	var p sharelink.Params
	if in.AutomationTime != nil {
		p.Automation = sharelink.FromInput(worth.Input{AutomationTime: *in.AutomationTime}).Automation
	}
	if in.ManualTime != nil {
		p.Manual = sharelink.FromInput(worth.Input{ManualTime: *in.ManualTime}).Manual
	}
	if in.Repetitions != nil {
		p.Repetitions = sharelink.FromInput(worth.Input{Repetitions: *in.Repetitions}).Repetitions
	}
	return p
}

// Input converts a validated share request to calculator input
func (in ShareInput) Input() worth.Input {
	var out worth.Input
	if in.AutomationTime != nil {
		out.AutomationTime = *in.AutomationTime
	}
	if in.ManualTime != nil {
		out.ManualTime = *in.ManualTime
	}
	if in.Repetitions != nil {
		out.Repetitions = *in.Repetitions
	}
	return out
}
