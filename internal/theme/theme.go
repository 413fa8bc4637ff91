package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Banner                *lipgloss.Style
	Heading               *lipgloss.Style
	SelectedHeading       *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Narration             *lipgloss.Style
	Invalid               *lipgloss.Style
	Footer                *lipgloss.Style
}

var defaultStyles = Styles{
	Banner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedHeading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Narration: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
	),
	Invalid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set that renders text without decoration.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Banner:                ptr(plain),
		Heading:               ptr(plain),
		SelectedHeading:       ptr(plain),
		Item:                  ptr(plain),
		ItemIndicator:         ptr(plain),
		SelectedItem:          ptr(plain),
		SelectedItemIndicator: ptr(plain),
		Narration:             ptr(plain),
		Invalid:               ptr(plain),
		Footer:                ptr(plain),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
