// Package style holds the colours, lipgloss styles and pterm status badges
// used by the rich terminal renderer.
package style
