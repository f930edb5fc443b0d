package console

import "github.com/charmbracelet/lipgloss"

// Prompt is passed to the line editor unstyled: liner does not account
// for ANSI escapes when computing prompt width.
const Prompt = ">> "

var (
	// ErrorStyle marks error lines so mistakes stand out during manual
	// debugging sessions
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// ReplyStyle marks the reply prefix of received data
	ReplyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40"))
)
