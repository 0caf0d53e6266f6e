package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(DefaultPalette.Heading).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(DefaultPalette.Text)

	MutedStyle = lipgloss.NewStyle().
			Foreground(DefaultPalette.Muted)

	OkStyle = lipgloss.NewStyle().
		Foreground(DefaultPalette.Ok)

	FixedStyle = lipgloss.NewStyle().
			Foreground(DefaultPalette.Fixed).
			Bold(true)

	PendingStyle = lipgloss.NewStyle().
			Foreground(DefaultPalette.Pending).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(DefaultPalette.Failed).
			Bold(true)
)

// Indicators prefix unit and item lines
var (
	SuccessIndicator = FixedStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = PendingStyle.Render("!")
	InfoIndicator    = OkStyle.Render("•")
	PendingIndicator = MutedStyle.Render("○")
)

// KindStyle returns the style used for an action kind label
func KindStyle(kind string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DefaultPalette.KindColor(kind)).
		Bold(true)
}

// Indent pads s by two spaces per level
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
