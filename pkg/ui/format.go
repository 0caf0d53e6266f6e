package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a command result is written
type Format int

const (
	// FormatAuto picks term or text from the output stream
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	// FormatJSON prints the CommandResult document, for CI
	FormatJSON
)

// String returns the name accepted by --format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat reads a --format or output.format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want auto, term, text or json)", s).
			WithDetail("format", s)
	}
}

// Resolve replaces FormatAuto with the format detected for output. Writers
// that are not files get the terminal format.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatTerminal
}

// DetectFormat returns FormatTerminal only for colour-capable terminals
// and honours NO_COLOR
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
