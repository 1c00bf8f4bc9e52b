package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	account    lipgloss.Style
	label      lipgloss.Style
	amount     lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	success    lipgloss.Style
	pending    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		account:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(10),
		amount:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		success:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		pending:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
