package ui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6E7781", Dark: "#8B949E"}
	successColor = lipgloss.Color("#2DA44E")
	dangerColor  = lipgloss.Color("#CF222E")
)

// Styles groups the lipgloss styles the review view renders with
type Styles struct {
	Title   lipgloss.Style
	Card    lipgloss.Style
	Name    lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Accept  lipgloss.Style
	Reject  lipgloss.Style
	Spinner lipgloss.Style
}

// DefaultStyles returns the styles used by the interactive view
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2),
		Name:    lipgloss.NewStyle().Bold(true),
		Label:   lipgloss.NewStyle().Foreground(mutedColor).Width(10),
		Value:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(mutedColor),
		Error:   lipgloss.NewStyle().Foreground(dangerColor).Bold(true),
		Accept:  lipgloss.NewStyle().Foreground(successColor).Bold(true),
		Reject:  lipgloss.NewStyle().Foreground(dangerColor).Bold(true),
		Spinner: lipgloss.NewStyle().Foreground(accentColor),
	}
}
