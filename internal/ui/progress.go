// Package ui renders the conversion progress bar and styled console output.
package ui

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// IsTTY reports whether stderr is an interactive terminal; the progress bar
// is skipped otherwise.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// message types

// ProgressMsg carries the completed fraction of the input, 0..1.
type ProgressMsg float64

// DoneMsg ends the progress display.
type DoneMsg struct{ Err error }

// model

type model struct {
	bar      progress.Model
	title    string
	done     bool
	canceled bool
}

// NewProgram builds a bubbletea program showing a single progress bar. The
// caller feeds it ProgressMsg values via Send and finishes with DoneMsg.
func NewProgram(title string) *tea.Program {
	m := model{
		bar:   progress.New(progress.WithDefaultGradient()),
		title: title,
	}
	return tea.NewProgram(m, tea.WithOutput(os.Stderr))
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.canceled = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 80 {
			w = 80
		}
		if w > 0 {
			m.bar.Width = w
		}
		return m, nil

	case ProgressMsg:
		return m, m.bar.SetPercent(float64(msg))

	case DoneMsg:
		m.done = true
		return m, tea.Sequence(m.bar.SetPercent(1), tea.Quit)

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.canceled {
		return ""
	}
	return styleTitle.Render(m.title) + "\n" + m.bar.View() + "\n"
}

// Counter is a goroutine-safe byte counter for progress reporting while the
// parse goroutine reads the input.
type Counter struct{ n atomic.Int64 }

func (c *Counter) Add(n int)    { c.n.Add(int64(n)) }
func (c *Counter) Value() int64 { return c.n.Load() }
