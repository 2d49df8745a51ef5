// Package logger holds the process-wide zerolog logger, configured from LOG_*,
// and hands out per-request and per-component children
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"worthit/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the logger
type Options struct {
	Level       string
	Format      string // console or json
	Service     string
	Writer      io.Writer
	WithCaller  bool
	SampleEvery int
	Fields      map[string]string
}

// FromEnv overlays LOG_* variables on base, so each binary picks its own defaults
// it reads through the logging-free raw view to avoid an import cycle
func FromEnv(base Options) Options {
	env := raw.Under("LOG_")
	opt := base
	opt.Level = strings.ToLower(env.String("LEVEL", or(base.Level, "info")))
	opt.Format = strings.ToLower(env.String("FORMAT", or(base.Format, "console")))
	opt.Service = env.String("SERVICE", base.Service)
	opt.WithCaller = env.Bool("CALLER", base.WithCaller)
	opt.SampleEvery = env.Int("SAMPLE_EVERY", base.SampleEvery)
	return opt
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

var (
	once sync.Once
	root atomic.Pointer[zerolog.Logger]
)

// Logger is the zerolog logger every package writes to
type Logger = zerolog.Logger

// Get returns the root logger, building it from LOG_* on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv(Options{}))
	return root.Load()
}

// Init installs New(opt) as the root logger; only the first call counts
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// New builds a logger from opt without touching the root one
func New(opt Options) Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok {
		ctx = ctx.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	for k, v := range opt.Fields {
		ctx = ctx.Str(k, v)
	}
	if opt.WithCaller {
		ctx = ctx.Caller()
	}

	l := ctx.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// parseLevel accepts zerolog level names plus "warning"; anything else is info
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// WithRequest stores a request_id child of the root logger on ctx
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return Get().With().Str("request_id", reqID).Logger().WithContext(ctx)
}

// C is the logger WithRequest stored on ctx, or the root logger
func C(ctx context.Context) *Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return Get()
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
