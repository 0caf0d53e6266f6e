package style

import (
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Palette groups the adaptive colours used by the terminal output. Light is
// picked on light backgrounds, Dark otherwise.
type Palette struct {
	Heading lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor

	Ok      lipgloss.AdaptiveColor
	Fixed   lipgloss.AdaptiveColor
	Pending lipgloss.AdaptiveColor
	Failed  lipgloss.AdaptiveColor

	// Kinds colours the action kind column, keyed by action key
	Kinds map[string]lipgloss.AdaptiveColor
}

// DefaultPalette is the palette every style in this package is built from
var DefaultPalette = Palette{
	Heading: lipgloss.AdaptiveColor{Light: "#1F2933", Dark: "#F5F7FA"},
	Text:    lipgloss.AdaptiveColor{Light: "#3E4C59", Dark: "#E4E7EB"},
	Muted:   lipgloss.AdaptiveColor{Light: "#7B8794", Dark: "#9AA5B1"},

	Ok:      lipgloss.AdaptiveColor{Light: "#2F855A", Dark: "#68D391"},
	Fixed:   lipgloss.AdaptiveColor{Light: "#2B6CB0", Dark: "#63B3ED"},
	Pending: lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6E05E"},
	Failed:  lipgloss.AdaptiveColor{Light: "#C53030", Dark: "#FC8181"},

	Kinds: map[string]lipgloss.AdaptiveColor{
		types.ActionCopyFrom:           {Light: "#0E7490", Dark: "#22D3EE"},
		types.ActionBeSubsetOfJSONFile: {Light: "#6D28D9", Dark: "#C4B5FD"},
		types.ActionChmod:              {Light: "#C2410C", Dark: "#FDBA74"},
		types.ActionHaveJSONPathValues: {Light: "#047857", Dark: "#6EE7B7"},
	},
}

// KindColor returns the colour for an action kind, falling back to Text
func (p Palette) KindColor(kind string) lipgloss.AdaptiveColor {
	if c, ok := p.Kinds[kind]; ok {
		return c
	}
	return p.Text
}
