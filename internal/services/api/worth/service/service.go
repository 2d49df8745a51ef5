// Package service implements the worth calculator facade used by the API and web page
package service

import (
	"context"
	"net/url"

	"worthit/internal/core/i18n"
	"worthit/internal/core/locale"
	"worthit/internal/core/sharelink"
	"worthit/internal/core/worth"
	perr "worthit/internal/platform/errors"
	"worthit/internal/platform/logger"
	"worthit/internal/services/api/worth/domain"
)

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	Catalog *i18n.Catalog
}

// New constructs a worth service; a nil catalog uses the built-in packs
func New(cat *i18n.Catalog) *Service {
	if cat == nil {
		cat = i18n.Default()
	}
	return &Service{Catalog: cat}
}

var _ domain.ServicePort = (*Service)(nil)

// Evaluate runs the calculator over raw params
// incomplete or invalid params produce a non-computable evaluation, never an error
func (s *Service) Evaluate(ctx context.Context, p sharelink.Params, page *url.URL, text *i18n.Text) domain.Evaluation {
	if text == nil {
		text = s.Catalog.For(locale.Primary)
	}
	out := domain.Evaluation{Lang: text.Lang(), Input: p}

	in, ok := p.Input()
	if !ok {
		out.Placeholder = text.T(i18n.FillInputs)
		return out
	}
	res, ok := worth.Compute(in)
	if !ok {
		logger.C(ctx).Debug().Interface("input", in).Msg("worth: input not computable")
		out.Placeholder = text.T(i18n.FillInputs)
		return out
	}

	h, m := res.Clock()
	out.Computable = true
	out.Result = &res
	out.Clock = &domain.Clock{Hours: h, Minutes: m}
	out.Duration = worth.FormatDuration(res.TimeDifference)
	out.Text = &domain.Text{
		Verdict:    text.Verdict(res),
		Headline:   text.Headline(res),
		Amount:     text.Amount(res),
		Clock:      text.Clock(res),
		Efficiency: text.EfficiencyLine(res),
		Summary:    text.Summary(res),
	}
	out.ShareURL = sharelink.ShareURL(page, p)
	return out
}

// Share encodes validated input into a link on page, or on in.BaseURL when set
func (s *Service) Share(ctx context.Context, in domain.ShareInput, page *url.URL) (domain.ShareOutput, error) {
	wi := in.Input()
	if !wi.Valid() {
		return domain.ShareOutput{}, perr.Newf(perr.ErrorCodeValidation, "input cannot be shared")
	}
	if in.BaseURL != "" {
		u, err := url.Parse(in.BaseURL)
		if err != nil {
			return domain.ShareOutput{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeValidation, "invalid base_url"), "base_url")
		}
		page = u
	}
	p := sharelink.FromInput(wi)
	link := sharelink.ShareURL(page, p)
	logger.C(ctx).Debug().Str("url", link).Msg("worth: share link built")
	return domain.ShareOutput{URL: link, Query: sharelink.Encode(p)}, nil
}

// Check validates one raw form value with the localized message for any issue
func (s *Service) Check(_ context.Context, in domain.CheckInput, text *i18n.Text) domain.CheckOutput {
	if text == nil {
		text = s.Catalog.For(locale.Primary)
	}
	issue := worth.CheckField(in.Value, worth.ParseFieldKind(in.Kind))
	if issue == worth.IssueNone {
		return domain.CheckOutput{Valid: true}
	}
	return domain.CheckOutput{Code: issue.Key(), Message: text.Issue(issue)}
}
