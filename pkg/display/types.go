package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/dictator/pkg/style"
)

// CommandResult is the display view of one command
type CommandResult struct {
	// Command is the command that produced the view (run, check, list, ...)
	Command string `json:"command"`

	DryRun  bool         `json:"dry_run"`
	Units   []UnitResult `json:"units"`
	Summary Summary      `json:"summary"`

	// Error is the fatal error of the command, if any
	Error string `json:"error,omitempty"`
}

// UnitResult groups the work of one unit
type UnitResult struct {
	Name       string       `json:"name"`
	Applicable bool         `json:"applicable"`
	Status     style.Status `json:"status"`
	Message    string       `json:"message,omitempty"`
	Items      []ItemResult `json:"items,omitempty"`
}

// ItemResult is one work item line
type ItemResult struct {
	Kind    string       `json:"kind"`
	Info    string       `json:"info"`
	Message string       `json:"message,omitempty"`
	Status  style.Status `json:"status"`
	Error   string       `json:"error,omitempty"`
}

// Summary provides overall counts
type Summary struct {
	Units      int                  `json:"units"`
	Applicable int                  `json:"applicable"`
	Items      int                  `json:"items"`
	Counts     map[style.Status]int `json:"counts,omitempty"`
	Duration   time.Duration        `json:"duration,omitempty"`
}

// summaryOrder is the order counts appear in the summary line
var summaryOrder = []style.Status{
	style.StatusChanged,
	style.StatusUnchanged,
	style.StatusPending,
	style.StatusFailed,
	style.StatusSkipped,
}

// Line renders the summary as one sentence
func (s Summary) Line() string {
	line := fmt.Sprintf("%d units, %d applicable, %d items", s.Units, s.Applicable, s.Items)

	var parts []string
	for _, status := range summaryOrder {
		if n := s.Counts[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}
	if len(parts) > 0 {
		line += ": " + strings.Join(parts, ", ")
	}
	return line
}

// Title returns the header for the command
func (cr CommandResult) Title() string {
	title := cr.Command
	if cr.DryRun {
		title += " (dry run)"
	}
	return title
}

// Text returns the info line of an item with its message appended
func (ir ItemResult) Text() string {
	text := ir.Info
	if ir.Message != "" {
		text += " (" + ir.Message + ")"
	}
	if ir.Error != "" {
		text += ": " + ir.Error
	}
	return text
}
