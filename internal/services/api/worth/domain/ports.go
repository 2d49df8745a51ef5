package domain

import (
	"context"
	"net/url"

	"worthit/internal/core/i18n"
	"worthit/internal/core/sharelink"
)

// ServicePort is the worth service contract
type ServicePort interface {
	// Evaluate computes the result for raw params; it never fails
	Evaluate(ctx context.Context, p sharelink.Params, page *url.URL, text *i18n.Text) Evaluation
	// Share builds a share link for fully valid input
	Share(ctx context.Context, in ShareInput, page *url.URL) (ShareOutput, error)
	// Check validates a single form value
	Check(ctx context.Context, in CheckInput, text *i18n.Text) CheckOutput
}
