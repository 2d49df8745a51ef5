package main

import (
	"context"
	"fmt"

	"worthit/internal/core/clipboard"
	"worthit/internal/core/i18n"
	"worthit/internal/services/api/worth/domain"
	"worthit/internal/services/api/worth/service"

	"github.com/spf13/cobra"
)

func newShareCmd(e env, root *rootFlags) *cobra.Command {
	in := &inputFlags{}
	var (
		base   string
		toClip bool
	)
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print a link that reproduces these inputs",
		Example: `  worthit share -a 60 -m 5 -r 50
  worthit share -a 60 -m 5 -r 50 --base https://worth.example/ --copy`,
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
			wi, ok := in.params.Input()
			if !ok || !wi.Valid() {
				return errNotComputable
			}
			out, err := service.New(e.cat).Share(cmd.Context(), domain.ShareInput{
				AutomationTime: &wi.AutomationTime,
				ManualTime:     &wi.ManualTime,
				Repetitions:    &wi.Repetitions,
			}, page)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.URL)
			if toClip {
				copyLink(cmd.Context(), e, text, cmd, out.URL)
			}
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&base, "base", "", "page the link points at (default $WORTHIT_API_PUBLIC_URL)")
	cmd.Flags().BoolVarP(&toClip, "copy", "c", false, "also copy the link to the clipboard")
	return cmd
}

// copyLink reports the outcome on stderr so stdout stays just the link
// a failed copy is not an error; the link is already printed
func copyLink(ctx context.Context, e env, text *i18n.Text, cmd *cobra.Command, link string) {
	var w clipboard.Writer = clipboard.Nop{}
	if e.clip != nil {
		w = e.clip(cmd.ErrOrStderr())
	}
	if clipboard.Copy(ctx, w, link, nil, 0) {
		fmt.Fprintln(cmd.ErrOrStderr(), text.T(i18n.Copied))
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), text.T(i18n.CopyFailed))
}
