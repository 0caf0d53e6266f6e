package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dictator/pkg/style"
)

// RichRenderer renders a CommandResult with colours and status badges
type RichRenderer struct {
	kindWidth int
}

// NewRichRenderer creates a new rich terminal renderer
func NewRichRenderer() *RichRenderer {
	return &RichRenderer{kindWidth: 18}
}

// RenderCommandResult renders the complete command result
func (r *RichRenderer) RenderCommandResult(result CommandResult) string {
	var output strings.Builder

	headerText := result.Title()
	if len(headerText) > 0 {
		headerText = strings.ToUpper(headerText[:1]) + headerText[1:]
	}
	output.WriteString(style.TitleStyle.Render(headerText) + "\n\n")

	for _, unit := range result.Units {
		output.WriteString(r.RenderUnitResult(unit) + "\n")
	}

	if len(result.Units) > 0 {
		output.WriteString("\n" + style.MutedStyle.Render(result.Summary.Line()))
	}

	if result.Error != "" {
		output.WriteString("\n" + style.ErrorIndicator + " " + style.ErrorStyle.Render(result.Error))
	}

	return strings.TrimRight(output.String(), "\n")
}

// RenderUnitResult renders a unit header followed by its items
func (r *RichRenderer) RenderUnitResult(unit UnitResult) string {
	var output strings.Builder

	name := style.Bold(unit.Name)
	if unit.Status == style.StatusFailed {
		name = style.StatusStyle(style.StatusFailed).Sprint(unit.Name)
	}
	header := fmt.Sprintf("%s %s", style.StatusIndicator(unit.Status), name)
	if !unit.Applicable {
		header += " " + style.MutedStyle.Render(style.StatusVerbs[style.StatusInactive])
	}
	output.WriteString(header + "\n")

	if unit.Message != "" {
		output.WriteString(style.Indent(style.MutedStyle.Render(unit.Message), 1) + "\n")
	}

	for _, item := range unit.Items {
		output.WriteString(style.Indent(r.RenderItemResult(item), 1) + "\n")
	}

	return strings.TrimRight(output.String(), "\n")
}

// RenderItemResult renders one item as "<status> : <kind> : <info>"
func (r *RichRenderer) RenderItemResult(item ItemResult) string {
	kind := style.KindStyle(item.Kind).Render(padRight(item.Kind, r.kindWidth))

	text := item.Info
	if item.Message != "" {
		text += " " + style.MutedStyle.Render("("+item.Message+")")
	}
	if item.Error != "" {
		text += " " + style.ErrorStyle.Render(item.Error)
	}

	return fmt.Sprintf("%s : %s : %s", style.StatusBadge(item.Status), kind, text)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
