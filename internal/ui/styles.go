package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("12")  // bright blue
	colorOK      = lipgloss.Color("10")  // bright green
	colorDim     = lipgloss.Color("240") // gray

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleSummary = lipgloss.NewStyle().
			Foreground(colorOK).
			Bold(true)
)

// Summary styles a final one-line result for the terminal.
func Summary(s string) string { return styleSummary.Render(s) }

// Dim styles secondary status text.
func Dim(s string) string { return styleDim.Render(s) }
