// Package ui picks the output renderer for a command: rich terminal, plain
// text or JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/dictator/pkg/display"
	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/ui/json"
	"github.com/arthur-debert/dictator/pkg/ui/terminal"
	"github.com/arthur-debert/dictator/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command view
	RenderResult(result display.CommandResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against output first.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
