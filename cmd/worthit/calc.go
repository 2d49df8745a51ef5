package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"worthit/internal/core/i18n"
	"worthit/internal/core/session"
	"worthit/internal/core/sharelink"
	"worthit/internal/core/worth"
	"worthit/internal/platform/net/http/bind"
	"worthit/internal/services/api/worth/domain"
	"worthit/internal/services/api/worth/service"

	"github.com/spf13/cobra"
)

// errNotComputable marks inputs that parse but do not describe a task
var errNotComputable = errors.New("inputs are not computable")

// inputFlags are the three calculator inputs as typed
type inputFlags struct {
	params sharelink.Params
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.params.Automation, "automation", "a", "", "minutes to build the automation")
	fs.StringVarP(&f.params.Manual, "manual", "m", "", "minutes per manual run")
	fs.StringVarP(&f.params.Repetitions, "repetitions", "r", "", "how many times the task runs")
}

// check returns one error naming every field with an issue, localized
func (f *inputFlags) check(text *i18n.Text) error {
	s := session.New(session.Options{})
	s.Load(f.params)
	var problems []string
	for _, fld := range session.Fields {
		if issue := worth.CheckField(s.Value(fld), fld.Kind()); issue != worth.IssueNone {
			problems = append(problems, fmt.Sprintf("--%s: %s", flagName(fld), text.Issue(issue)))
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func flagName(f session.Field) string {
	switch f {
	case session.Manual:
		return "manual"
	case session.Repetitions:
		return "repetitions"
	default:
		return "automation"
	}
}

func newCalcCmd(e env, root *rootFlags) *cobra.Command {
	in := &inputFlags{}
	var (
		asJSON bool
		base   string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compare automation cost with total manual time",
		Example: `  worthit calc -a 60 -m 5 -r 50
  worthit calc -a 60 -m 5 -r 50 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text := root.text(e)
			if err := in.check(text); err != nil {
				return err
			}
			page, err := basePage(e, base)
			if err != nil {
				return err
			}
			ev := service.New(e.cat).Evaluate(cmd.Context(), in.params, page, text)
			return printEvaluation(cmd.OutOrStdout(), ev, asJSON)
		},
	}
	in.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full evaluation as JSON")
	cmd.Flags().StringVar(&base, "base", "", "page the share link points at (default $WORTHIT_API_PUBLIC_URL)")
	return cmd
}

func newDecodeCmd(e env, root *rootFlags) *cobra.Command {
	var (
		asJSON bool
		base   string
	)
	cmd := &cobra.Command{
		Use:   "decode <link>",
		Short: "Evaluate the inputs carried by a share link",
		Long: `Evaluate the inputs carried by a share link.

A bare query has no page of its own, so its share link points at --base
or $WORTHIT_API_PUBLIC_URL.`,
		Example: `  worthit decode 'https://worth.example/?a=60&m=5&r=50'
  worthit decode 'a=60&m=5&r=50'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, p, err := splitLink(args[0])
			if err != nil {
				return err
			}
			if page == nil || base != "" {
				if page, err = basePage(e, base); err != nil {
					return err
				}
			}
			ev := service.New(e.cat).Evaluate(cmd.Context(), p, page, root.text(e))
			return printEvaluation(cmd.OutOrStdout(), ev, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full evaluation as JSON")
	cmd.Flags().StringVar(&base, "base", "", "page a bare query's share link points at (default $WORTHIT_API_PUBLIC_URL)")
	return cmd
}

// splitLink accepts a full share link or just its query
func splitLink(raw string) (*url.URL, sharelink.Params, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		return nil, sharelink.Decode(raw), nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, sharelink.Params{}, fmt.Errorf("invalid link: %w", err)
	}
	return u, sharelink.FromValues(u.Query()), nil
}

// parseBase reads a share base the same way the API validates base_url
func parseBase(raw string) (*url.URL, error) {
	if !bind.IsPageURL(raw) {
		return nil, fmt.Errorf("base %q must be an absolute http or https URL", raw)
	}
	return url.Parse(raw)
}

func printEvaluation(w io.Writer, ev domain.Evaluation, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ev)
	}
	if !ev.Computable {
		fmt.Fprintln(w, ev.Placeholder)
		return errNotComputable
	}
	fmt.Fprintln(w, ev.Text.Summary)
	fmt.Fprintln(w, ev.Text.Efficiency)
	if ev.ShareURL != "" {
		fmt.Fprintln(w, ev.ShareURL)
	}
	return nil
}
