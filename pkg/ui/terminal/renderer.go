// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dictator/pkg/display"
	"github.com/arthur-debert/dictator/pkg/style"
)

// Renderer writes display views with lipgloss and pterm styling
type Renderer struct {
	output io.Writer
	rich   *display.RichRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w, rich: display.NewRichRenderer()}
}

// RenderResult renders a command view
func (r *Renderer) RenderResult(result display.CommandResult) error {
	_, err := fmt.Fprintln(r.output, r.rich.RenderCommandResult(result))
	return err
}

// RenderError renders an error in the error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, style.ErrorStyle.Render(err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.NormalStyle.Render(msg))
	return err
}
