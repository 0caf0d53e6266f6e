package display

import (
	"time"

	"github.com/arthur-debert/dictator/pkg/executor"
	"github.com/arthur-debert/dictator/pkg/style"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/arthur-debert/dictator/pkg/units"
)

// FromRun builds the view of an executed plan. Report results are matched
// to plan items in order.
func FromRun(command string, plan units.Plan, report executor.Report, duration time.Duration) CommandResult {
	result := CommandResult{Command: command, DryRun: report.DryRun}

	next := 0
	for _, up := range plan.Units {
		ur := newUnitResult(up)
		if up.Applicable {
			var statuses []style.Status
			for _, item := range up.Items {
				ir := ItemResult{
					Kind:    item.Kind,
					Info:    item.Info(),
					Message: item.Message,
					Status:  style.StatusSkipped,
				}
				if next < len(report.Results) {
					res := report.Results[next]
					ir.Status = style.Status(res.Status)
					if res.Err != nil {
						ir.Error = res.Err.Error()
					}
				}
				next++
				statuses = append(statuses, ir.Status)
				ur.Items = append(ur.Items, ir)
			}
			ur.Status = style.Aggregate(statuses)
		}
		result.Units = append(result.Units, ur)
	}

	if report.Err != nil {
		result.Error = report.Err.Error()
	}
	result.Summary = summarize(result.Units)
	result.Summary.Duration = duration
	return result
}

// FromPlan builds the view of a plan that has not been executed
func FromPlan(command string, plan units.Plan) CommandResult {
	result := CommandResult{Command: command}

	for _, up := range plan.Units {
		ur := newUnitResult(up)
		if up.Applicable {
			ur.Status = style.StatusDiscovered
			for _, item := range up.Items {
				ur.Items = append(ur.Items, ItemResult{
					Kind:    item.Kind,
					Info:    item.Info(),
					Message: item.Message,
					Status:  style.StatusDiscovered,
				})
			}
		}
		result.Units = append(result.Units, ur)
	}

	result.Summary = summarize(result.Units)
	return result
}

// FromUnits builds the view of validated units without evaluating them
func FromUnits(command string, list []types.Unit) CommandResult {
	result := CommandResult{Command: command}

	for _, unit := range list {
		ur := UnitResult{
			Name:       unit.Name,
			Applicable: true,
			Status:     style.StatusDiscovered,
			Message:    unit.Message,
		}
		for _, action := range unit.Actions {
			for _, kind := range action.Kinds() {
				ur.Items = append(ur.Items, ItemResult{
					Kind:    kind,
					Info:    action.Target,
					Message: action.Message,
					Status:  style.StatusDiscovered,
				})
			}
		}
		result.Units = append(result.Units, ur)
	}

	result.Summary = summarize(result.Units)
	return result
}

// WithError records a fatal error on the view
func (cr CommandResult) WithError(err error) CommandResult {
	if err != nil {
		cr.Error = err.Error()
	}
	return cr
}

func newUnitResult(up units.UnitPlan) UnitResult {
	ur := UnitResult{
		Name:       up.Unit.Name,
		Applicable: up.Applicable,
		Status:     style.StatusInactive,
		Message:    up.Unit.Message,
	}
	return ur
}

func summarize(list []UnitResult) Summary {
	summary := Summary{Units: len(list), Counts: map[style.Status]int{}}
	for _, ur := range list {
		if ur.Applicable {
			summary.Applicable++
		}
		for _, ir := range ur.Items {
			summary.Items++
			summary.Counts[ir.Status]++
		}
	}
	return summary
}
