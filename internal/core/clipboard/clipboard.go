// Package clipboard copies share links to the user's clipboard on a best
// effort basis. Writers report success as a bool and never return errors
package clipboard

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Writer puts plain text on a clipboard
type Writer interface {
	Write(ctx context.Context, text string) bool
}

// seams for tests
var (
	systemWrite       = clipboard.WriteAll
	systemUnsupported = func() bool { return clipboard.Unsupported }
)

// System writes through the host clipboard (pbcopy, xclip, wl-copy, win32)
// The write runs off the caller's goroutine so a hung helper binary cannot
// block past ctx
type System struct {
	write func(string) error
}

// NewSystem returns a System writer backed by the host clipboard
func NewSystem() *System { return &System{write: systemWrite} }

// Write implements Writer
func (s *System) Write(ctx context.Context, text string) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	done := make(chan error, 1)
	go func() { done <- s.write(text) }()
	select {
	case err := <-done:
		return err == nil
	case <-ctx.Done():
		return false
	}
}

// OSC52 asks the terminal to set its clipboard with an escape sequence
// It works over ssh and inside tmux or screen where no host helper exists
type OSC52 struct {
	Out    io.Writer
	Tmux   bool
	Screen bool
}

// Write implements Writer
func (o OSC52) Write(_ context.Context, text string) bool {
	if o.Out == nil {
		return false
	}
	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(o.Out)
	return err == nil
}

// Nop never copies; used when no clipboard is reachable
type Nop struct{}

// Write implements Writer
func (Nop) Write(context.Context, string) bool { return false }

// Detect picks a writer for the current process
// remote shells and hosts without a clipboard helper get OSC52 on out
func Detect(out io.Writer, getenv func(string) string) Writer {
	if getenv == nil {
		getenv = os.Getenv
	}
	remote := getenv("SSH_TTY") != "" || getenv("SSH_CONNECTION") != ""
	if !remote && !systemUnsupported() {
		return NewSystem()
	}
	if out == nil {
		return Nop{}
	}
	return OSC52{
		Out:    out,
		Tmux:   getenv("TMUX") != "",
		Screen: strings.HasPrefix(getenv("TERM"), "screen") && getenv("TMUX") == "",
	}
}
