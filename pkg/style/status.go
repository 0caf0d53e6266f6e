package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status is the display state of a unit or work item
type Status string

const (
	StatusUnchanged  Status = "unchanged"  // Already converged
	StatusChanged    Status = "changed"    // Converged by this pass
	StatusPending    Status = "pending"    // Would change (dry run)
	StatusFailed     Status = "failed"     // Check or apply failed
	StatusSkipped    Status = "skipped"    // Not attempted after a failure
	StatusInactive   Status = "inactive"   // Unit triggers did not match
	StatusDiscovered Status = "discovered" // Listed without being checked
)

// StatusVerbs are the past and future tense phrases for each status
var StatusVerbs = map[Status]string{
	StatusUnchanged:  "ok",
	StatusChanged:    "fixed",
	StatusPending:    "to fix",
	StatusFailed:     "failed",
	StatusSkipped:    "skipped",
	StatusInactive:   "not applicable",
	StatusDiscovered: "declared",
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusUnchanged:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusChanged:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusPending:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusDiscovered:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusBadge renders the status verb padded to a fixed width
func StatusBadge(status Status) string {
	verb, ok := StatusVerbs[status]
	if !ok {
		verb = string(status)
	}
	return StatusStyle(status).Sprint(fmt.Sprintf("%-14s", verb))
}

// StatusIndicator returns the one-character marker for a status
func StatusIndicator(status Status) string {
	switch status {
	case StatusUnchanged, StatusChanged:
		return SuccessIndicator
	case StatusPending:
		return WarningIndicator
	case StatusFailed:
		return ErrorIndicator
	case StatusDiscovered:
		return InfoIndicator
	default:
		return PendingIndicator
	}
}

// Aggregate determines a unit status from its item statuses. Failure wins,
// then pending, then changed.
func Aggregate(items []Status) Status {
	rank := map[Status]int{
		StatusFailed:     5,
		StatusPending:    4,
		StatusChanged:    3,
		StatusSkipped:    2,
		StatusDiscovered: 1,
		StatusUnchanged:  0,
	}

	result := StatusUnchanged
	for _, s := range items {
		if rank[s] > rank[result] {
			result = s
		}
	}
	return result
}
