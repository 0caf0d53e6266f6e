package display

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dictator/pkg/style"
)

// TextRenderer provides minimal text output without styling
type TextRenderer struct {
	writer io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{writer: w}
}

// Render outputs the CommandResult in a simple text format
func (r *TextRenderer) Render(result CommandResult) error {
	if _, err := fmt.Fprintln(r.writer, result.Title()); err != nil {
		return err
	}

	if len(result.Units) == 0 && result.Error == "" {
		_, err := fmt.Fprintln(r.writer, "No units to process")
		return err
	}

	for _, unit := range result.Units {
		if err := r.renderUnit(unit); err != nil {
			return err
		}
	}

	if len(result.Units) > 0 {
		if _, err := fmt.Fprintf(r.writer, "\n%s\n", result.Summary.Line()); err != nil {
			return err
		}
	}

	if result.Error != "" {
		if _, err := fmt.Fprintf(r.writer, "Error: %s\n", result.Error); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderUnit(unit UnitResult) error {
	if !unit.Applicable {
		_, err := fmt.Fprintf(r.writer, "\n    %s: %s\n", unit.Name, style.StatusVerbs[style.StatusInactive])
		return err
	}

	if _, err := fmt.Fprintf(r.writer, "\n    %s:\n", unit.Name); err != nil {
		return err
	}
	if unit.Message != "" {
		if _, err := fmt.Fprintf(r.writer, "        %s\n", unit.Message); err != nil {
			return err
		}
	}

	for _, item := range unit.Items {
		verb := style.StatusVerbs[item.Status]
		if _, err := fmt.Fprintf(r.writer, "        %-14s : %s\n", verb, item.Text()); err != nil {
			return err
		}
	}
	return nil
}
