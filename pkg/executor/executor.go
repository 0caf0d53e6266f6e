package executor

import (
	"time"

	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/logging"
	"github.com/arthur-debert/dictator/pkg/work"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	DryRun    bool
	KeepGoing bool

	// Logger receives per-item logs. Nil uses the global "executor"
	// component logger; pass zerolog.Nop() to silence it.
	Logger *zerolog.Logger
}

// Executor runs work items in order
type Executor struct {
	dryRun    bool
	keepGoing bool
	logger    zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Executor{
		dryRun:    opts.DryRun,
		keepGoing: opts.KeepGoing,
		logger:    logger,
	}
}

// Run executes items with a new executor
func Run(items []work.Item, opts Options) Report {
	return New(opts).Execute(items)
}

// Execute processes items and returns one result per item
func (e *Executor) Execute(items []work.Item) Report {
	report := Report{DryRun: e.dryRun, Results: make([]Result, 0, len(items))}

	var failures []error
	for i, item := range items {
		if len(failures) > 0 && !e.keepGoing {
			for _, rest := range items[i:] {
				report.Results = append(report.Results, newResult(rest, StatusSkipped))
			}
			break
		}

		result := e.executeItem(item)
		report.Results = append(report.Results, result)
		if result.Err != nil {
			failures = append(failures, result.Err)
		}
	}

	switch {
	case len(failures) == 1:
		report.Err = failures[0]
	case len(failures) > 1:
		report.Err = errors.Wrapf(failures[0], errors.GetErrorCode(failures[0]),
			"%d work items failed", len(failures)).
			WithDetail("failures", len(failures))
	}
	return report
}

func newResult(item work.Item, status Status) Result {
	return Result{
		Unit:    item.Unit,
		Kind:    item.Kind,
		Info:    item.Info(),
		Message: item.Message,
		Status:  status,
	}
}

func (e *Executor) executeItem(item work.Item) Result {
	start := time.Now()
	result := newResult(item, StatusUnchanged)
	logger := e.logger.With().
		Str("unit", item.Unit).
		Str("kind", item.Kind).
		Str("info", result.Info).
		Logger()

	fail := func(err error) Result {
		result.Status = StatusFailed
		result.Err = err
		result.Duration = time.Since(start)
		logger.Error().Err(err).Msg("work failed")
		return result
	}

	applied, err := item.IsApplied()
	if err != nil {
		return fail(err)
	}
	if applied {
		result.Duration = time.Since(start)
		logger.Debug().Msg("already applied")
		return result
	}

	if e.dryRun {
		result.Status = StatusPending
		result.Duration = time.Since(start)
		logger.Info().Msg("not applied (dry run)")
		return result
	}

	if err := item.Apply(); err != nil {
		if !errors.IsErrorCode(err, errors.ErrPrecondition) && !errors.IsErrorCode(err, errors.ErrActionExecute) {
			err = errors.Wrap(err, errors.ErrActionExecute, "apply failed")
		}
		return fail(err)
	}

	result.Status = StatusChanged
	result.Duration = time.Since(start)
	logger.Info().Dur("duration", result.Duration).Msg("applied")
	return result
}
