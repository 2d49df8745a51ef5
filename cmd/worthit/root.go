package main

import (
	"context"
	"io"
	"net/url"
	"os"
	"time"

	"worthit/internal/core/clipboard"
	"worthit/internal/core/i18n"
	"worthit/internal/core/locale"
	"worthit/internal/core/session"
	"worthit/internal/core/version"
	"worthit/internal/platform/config"
	"worthit/internal/platform/logger"
	"worthit/internal/shell/tui"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

const (
	appName     = "worthit"
	defaultBase = "http://localhost:4000/"
)

// env is everything the commands touch outside themselves
type env struct {
	out    io.Writer
	errOut io.Writer
	lookup func(string) (string, bool)
	cat    *i18n.Catalog

	// clip picks the clipboard writer; the terminal is where OSC52 goes
	clip   func(term io.Writer) clipboard.Writer
	runTUI func(ctx context.Context, s *session.Session, page *url.URL) error
}

func defaultEnv() env {
	return env{
		out:    os.Stdout,
		errOut: os.Stderr,
		lookup: os.LookupEnv,
		cat:    i18n.Default(),
		clip: func(term io.Writer) clipboard.Writer {
			return clipboard.Detect(term, os.Getenv)
		},
		runTUI: func(ctx context.Context, s *session.Session, page *url.URL) error {
			return tui.Run(ctx, s, page)
		},
	}
}

// cfg reads WORTHIT_API_ settings through the same lookup as everything else
func (e env) cfg() config.Conf {
	return config.New().Source(e.lookup).Prefix("WORTHIT_API_")
}

func (e env) getenv(k string) string {
	if e.lookup == nil {
		return ""
	}
	v, _ := e.lookup(k)
	return v
}

// rootFlags are shared by every subcommand
type rootFlags struct {
	lang string
}

// language resolves --lang, then WORTHIT_API_DEFAULT_LANG, then the host locale
func (f *rootFlags) language(e env) language.Tag {
	if f.lang != "" {
		return locale.Parse(f.lang)
	}
	if v := e.cfg().MayEnum("DEFAULT_LANG", "", "en", "pl"); v != "" {
		return locale.Parse(v)
	}
	return locale.Env{Lookup: e.getenv}.Locale()
}

func (f *rootFlags) text(e env) *i18n.Text {
	return e.cat.For(f.language(e))
}

// ackDuration reads WORTHIT_API_COPY_ACK
func ackDuration(e env) time.Duration {
	return e.cfg().MayDuration("COPY_ACK", clipboard.AckDuration)
}

// basePage is the page share links point at
func basePage(e env, flag string) (*url.URL, error) {
	raw := flag
	if raw == "" {
		raw = e.cfg().MayString("PUBLIC_URL", defaultBase)
	}
	return parseBase(raw)
}

func newRootCmd(e env) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   appName,
		Short: "Is it worth automating?",
		Long: `worthit compares the one-off cost of automating a task with the
manual time it would otherwise take across all repetitions.

Times are in minutes. Share links carry the inputs as a, m and r.`,
		Version:       version.Info(appName).String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Get().Debug().Str("cmd", cmd.CommandPath()).Msg("run")
		},
	}
	root.SetOut(e.out)
	root.SetErr(e.errOut)
	root.PersistentFlags().StringVarP(&flags.lang, "lang", "l", "", "output language (en|pl); defaults to the host locale")

	root.AddCommand(
		newCalcCmd(e, flags),
		newShareCmd(e, flags),
		newDecodeCmd(e, flags),
		newTUICmd(e, flags),
	)
	return root
}
