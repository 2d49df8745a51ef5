// Package tui is the terminal calculator built on bubbletea
package tui

import (
	"context"
	"net/url"
	"strings"
	"time"

	"worthit/internal/core/clipboard"
	"worthit/internal/core/i18n"
	"worthit/internal/core/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// copyTimeout bounds one clipboard write
const copyTimeout = 3 * time.Second

type (
	// shareDoneMsg reports a finished clipboard write
	shareDoneMsg struct {
		link string
		ok   bool
	}
	// ackExpiredMsg ends the acknowledgment raised by share number seq
	ackExpiredMsg struct{ seq int }
)

// Model is the bubbletea model for one calculator session
type Model struct {
	s      *session.Session
	page   *url.URL
	inputs []textinput.Model
	focus  int
	styles Styles

	// failedLink is shown when the last copy did not reach the clipboard
	failedLink string
	// acks counts successful shares so a stale tick cannot end a newer ack
	acks     int
	quitting bool
}

// New builds the model; page is where share links point
func New(s *session.Session, page *url.URL) Model {
	m := Model{s: s, page: page, styles: StylesFor(s.Theme())}
	for i, f := range session.Fields {
		in := textinput.New()
		in.Prompt = "› "
		in.CharLimit = 16
		in.SetValue(s.Value(f))
		if f == session.Repetitions {
			in.Placeholder = "50"
		} else {
			in.Placeholder = "0"
		}
		if i == 0 {
			in.Focus()
		}
		m.inputs = append(m.inputs, in)
	}
	return m
}

// Session exposes the underlying state, mostly for tests
func (m Model) Session() *session.Session { return m.s }

// Init implements tea.Model
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.s.Close()
			return m, tea.Quit
		case "enter", "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "ctrl+t":
			m.styles = StylesFor(m.s.ToggleTheme())
			return m, nil
		case "ctrl+s":
			return m, m.share()
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.s.Set(session.Fields[m.focus], m.inputs[m.focus].Value())
		m.failedLink = ""
		return m, cmd

	case shareDoneMsg:
		if !msg.ok {
			m.failedLink = msg.link
			return m, nil
		}
		m.failedLink = ""
		m.acks++
		m.s.MarkCopied()
		seq := m.acks
		return m, tea.Tick(m.s.AckDuration(), func(time.Time) tea.Msg { return ackExpiredMsg{seq: seq} })

	case ackExpiredMsg:
		if msg.seq == m.acks {
			m.s.ClearCopied()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

// share copies the link off the update loop; nothing happens without a result
func (m Model) share() tea.Cmd {
	if _, ok := m.s.Result(); !ok {
		return nil
	}
	link := m.s.ShareURL(m.page)
	clip := m.s.Clipboard()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()
		return shareDoneMsg{link: link, ok: clipboard.Copy(ctx, clip, link, nil, 0)}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.s.Text()
	st := m.styles
	var b strings.Builder

	b.WriteString(st.Title.Render(t.T(i18n.HeroTitle)) + "\n")
	b.WriteString(st.Subtle.Render(t.T(i18n.HeroSubtitle)) + "\n\n")
	b.WriteString(st.Subtle.Render(t.T(i18n.FormulaTitle)+": "+t.T(i18n.Formula)) + "\n\n")

	for i, f := range session.Fields {
		label := st.Label
		if i == m.focus {
			label = st.Focused
		}
		b.WriteString(label.Render(t.T(f.Label())) + "\n")
		b.WriteString(m.inputs[i].View() + "\n")
		if msg := t.Issue(m.s.Issue(f)); msg != "" {
			b.WriteString(st.Issue.Render(msg) + "\n")
		}
	}
	b.WriteString("\n")

	if r, ok := m.s.Result(); ok {
		verdict := st.NotWorth
		if r.IsWorth {
			verdict = st.Worth
		}
		body := verdict.Render(t.Verdict(r)) + "\n" +
			t.Headline(r) + " " + t.Amount(r) + " (" + t.Clock(r) + ")\n" +
			st.Subtle.Render(t.EfficiencyLine(r)) + "\n" +
			st.Subtle.Render(m.s.ShareURL(m.page))
		b.WriteString(st.Box.Render(body) + "\n")
	} else {
		b.WriteString(st.Box.Render(t.T(i18n.ReadyToCalculate)+"\n"+st.Subtle.Render(t.T(i18n.FillInputs))) + "\n")
	}

	switch {
	case m.s.Copied():
		b.WriteString(st.Status.Render(t.T(i18n.Copied)) + "\n")
	case m.failedLink != "":
		b.WriteString(st.Issue.Render(t.T(i18n.CopyFailed)+": "+m.failedLink) + "\n")
	default:
		b.WriteString("\n")
	}
	b.WriteString(st.Help.Render(t.T(i18n.KeysHelp)) + "\n")
	return b.String()
}

// Run starts the program on the terminal and blocks until the user quits
func Run(ctx context.Context, s *session.Session, page *url.URL, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(s, page), opts...).Run()
	return err
}
