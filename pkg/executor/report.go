package executor

import "time"

// Status is the outcome of one work item
type Status string

const (
	// StatusUnchanged means the end state already held
	StatusUnchanged Status = "unchanged"
	// StatusChanged means Apply reached the end state
	StatusChanged Status = "changed"
	// StatusPending means the end state does not hold and this was a dry run
	StatusPending Status = "pending"
	// StatusFailed means IsApplied or Apply returned an error
	StatusFailed Status = "failed"
	// StatusSkipped means an earlier failure stopped the run
	StatusSkipped Status = "skipped"
)

// Statuses lists every status in display order
var Statuses = []Status{StatusChanged, StatusUnchanged, StatusPending, StatusFailed, StatusSkipped}

// Result is the outcome of one work item
type Result struct {
	Unit     string        `json:"unit"`
	Kind     string        `json:"kind"`
	Info     string        `json:"info"`
	Message  string        `json:"message,omitempty"`
	Status   Status        `json:"status"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Report is the outcome of one enforcement pass
type Report struct {
	DryRun  bool     `json:"dry_run"`
	Results []Result `json:"results"`

	// Err is the first failure, or a summary wrapping it when several
	// items failed with KeepGoing
	Err error `json:"-"`
}

// Counts returns the number of results per status
func (r Report) Counts() map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, result := range r.Results {
		counts[result.Status]++
	}
	return counts
}

// HasPending reports whether a dry run found unapplied work
func (r Report) HasPending() bool {
	return r.Counts()[StatusPending] > 0
}

// Failed reports whether any item failed
func (r Report) Failed() bool {
	return r.Err != nil
}
