package main

import (
	"worthit/internal/core/locale"
	"worthit/internal/core/session"

	"github.com/spf13/cobra"
)

func newTUICmd(e env, root *rootFlags) *cobra.Command {
	var (
		base  string
		theme string
	)
	cmd := &cobra.Command{
		Use:   "tui [link]",
		Short: "Open the interactive calculator",
		Long: `Open the interactive calculator in the terminal.

A share link or query passed as the argument pre-fills the inputs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := basePage(e, base)
			if err != nil {
				return err
			}
			s := session.New(session.Options{
				Locale:      locale.Fixed(root.language(e)),
				Catalog:     e.cat,
				Theme:       session.ParseTheme(theme),
				Clipboard:   e.clip(cmd.OutOrStdout()),
				AckDuration: ackDuration(e),
			})
			defer s.Close()
			if len(args) == 1 {
				_, p, err := splitLink(args[0])
				if err != nil {
					return err
				}
				s.Load(p)
			}
			return e.runTUI(cmd.Context(), s, page)
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "page share links point at (default $WORTHIT_API_PUBLIC_URL)")
	cmd.Flags().StringVar(&theme, "theme", "light", "color theme (light|dark)")
	return cmd
}
