package units

import (
	"github.com/arthur-debert/dictator/pkg/discovery"
	"github.com/arthur-debert/dictator/pkg/logging"
	"github.com/arthur-debert/dictator/pkg/paths"
	"github.com/arthur-debert/dictator/pkg/schema"
	"github.com/arthur-debert/dictator/pkg/triggers"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/arthur-debert/dictator/pkg/work"
	"github.com/rs/zerolog"
)

// Options configures an Orchestrator
type Options struct {
	FS     types.FS
	Paths  paths.Paths
	Logger zerolog.Logger

	// UnitFiles overrides discovery.DefaultUnitFiles
	UnitFiles []string

	// Platform and LookupEnv override what triggers observe
	Platform  string
	LookupEnv func(string) (string, bool)
}

// Orchestrator ties discovery, validation, trigger evaluation and work
// creation together
type Orchestrator struct {
	paths     paths.Paths
	logger    zerolog.Logger
	finder    *discovery.Finder
	validator *schema.Validator
	evaluator *triggers.Evaluator
	creator   *work.Creator
}

// UnitPlan is the outcome of planning one unit
type UnitPlan struct {
	Unit       types.Unit
	Applicable bool
	Items      []work.Item
}

// Plan is the ordered outcome of planning every unit
type Plan struct {
	Units []UnitPlan
}

// Items flattens the work of every applicable unit in order
func (p Plan) Items() []work.Item {
	var items []work.Item
	for _, u := range p.Units {
		items = append(items, u.Items...)
	}
	return items
}

// Applicable returns the number of applicable units
func (p Plan) Applicable() int {
	n := 0
	for _, u := range p.Units {
		if u.Applicable {
			n++
		}
	}
	return n
}

// New creates an Orchestrator
func New(opts Options) (*Orchestrator, error) {
	validator, err := schema.New()
	if err != nil {
		return nil, err
	}

	evaluator := triggers.NewEvaluator(opts.FS, opts.Paths, opts.Logger.With().Str("component", "triggers").Logger())
	if opts.Platform != "" {
		evaluator.WithPlatform(opts.Platform)
	}
	if opts.LookupEnv != nil {
		evaluator.WithLookupEnv(opts.LookupEnv)
	}

	return &Orchestrator{
		paths:     opts.Paths,
		logger:    opts.Logger,
		finder:    discovery.NewFinder(opts.FS, opts.Logger.With().Str("component", "discovery").Logger(), opts.UnitFiles),
		validator: validator,
		evaluator: evaluator,
		creator:   work.NewCreator(opts.FS, opts.Paths, opts.Logger.With().Str("component", "work").Logger()),
	}, nil
}

// Load discovers and validates every unit. Any invalid unit fails the
// whole load.
func (o *Orchestrator) Load() ([]types.Unit, error) {
	defer logging.LogOperationStart(o.logger, "load units")()

	raws, err := o.finder.Find(o.paths.UnitsDir())
	if err != nil {
		return nil, err
	}

	units, err := o.validator.ValidateAll(raws)
	if err != nil {
		return nil, err
	}

	o.logger.Info().Int("units", len(units)).Msg("units loaded")
	return units, nil
}

// Plan evaluates triggers and creates work for the given units
func (o *Orchestrator) Plan(units []types.Unit) (Plan, error) {
	defer logging.LogOperationStart(o.logger, "plan units")()

	plan := Plan{Units: make([]UnitPlan, 0, len(units))}

	for _, unit := range units {
		up := UnitPlan{Unit: unit, Applicable: o.evaluator.IsApplicable(unit)}
		if up.Applicable {
			items, err := o.creator.WorkFor(unit)
			if err != nil {
				return Plan{}, err
			}
			up.Items = items
		}
		plan.Units = append(plan.Units, up)
	}

	o.logger.Info().
		Int("units", len(units)).
		Int("applicable", plan.Applicable()).
		Int("work", len(plan.Items())).
		Msg("plan ready")
	return plan, nil
}

// LoadAndPlan runs Load then Plan
func (o *Orchestrator) LoadAndPlan() (Plan, error) {
	units, err := o.Load()
	if err != nil {
		return Plan{}, err
	}
	return o.Plan(units)
}
