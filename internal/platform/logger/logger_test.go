package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "worthit/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zerolog.Level{
		"trace":       zerolog.TraceLevel,
		"DEBUG":       zerolog.DebugLevel,
		"warn":        zerolog.WarnLevel,
		" warning ":   zerolog.WarnLevel,
		"error":       zerolog.ErrorLevel,
		"":            zerolog.InfoLevel,
		"not-a-level": zerolog.InfoLevel,
	} {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv_OverlaysBase(t *testing.T) {
	base := Options{Service: "worthit", Level: "warn", WithCaller: true}

	opt := FromEnv(base)
	if opt.Level != "warn" || opt.Format != "console" || opt.Service != "worthit" || !opt.WithCaller {
		t.Fatalf("base defaults lost: %+v", opt)
	}

	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "worthit-api")
	t.Setenv("LOG_CALLER", "no")
	t.Setenv("LOG_SAMPLE_EVERY", "5")
	opt = FromEnv(base)
	if opt.Level != "debug" || opt.Format != "json" || opt.Service != "worthit-api" {
		t.Fatalf("env not applied: %+v", opt)
	}
	if opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("caller/sample not applied: %+v", opt)
	}
}

func TestInit_ChildrenCarryFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:       "info",
		Format:      "json",
		Service:     "worthit-api",
		Writer:      &buf,
		SampleEvery: 2,
		Fields:      map[string]string{"build": "test"},
	})

	// sampling is on; resample to 1 so every line lands
	emit := func(l *Logger, msg string) {
		ll := l.Sample(&zerolog.BasicSampler{N: 1})
		ll.Info().Msg(msg)
	}
	emit(Get(), "root")
	emit(Named("worth"), "named")
	emit(C(WithRequest(context.Background(), "req-123")), "scoped")
	emit(C(WithRequest(context.Background(), "")), "unscoped")

	out := buf.String()
	for _, want := range []string{
		`"message":"root"`,
		`"component":"worth"`,
		`"request_id":"req-123"`,
		`"message":"unscoped"`,
		`"service":"worthit-api"`,
		`"build":"test"`,
	} {
		kit.MustContain(t, out, want)
	}
}

func TestNew_LevelCallerAndSampling(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warning", Format: "json", Writer: &buf, WithCaller: true})
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")
	if out := buf.String(); strings.Contains(out, "dropped") || !strings.Contains(out, `"caller":`) {
		t.Fatalf("output = %s", out)
	}

	buf.Reset()
	sampled := New(Options{Format: "json", Writer: &buf, SampleEvery: 3})
	for i := 0; i < 6; i++ {
		sampled.Info().Msg("tick")
	}
	if n := strings.Count(buf.String(), "tick"); n != 2 {
		t.Fatalf("sampled %d of 6 lines, want 2", n)
	}
}
