package triggers

import (
	"github.com/arthur-debert/dictator/pkg/predicates"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
)

// TargetResolver turns a unit-declared target into an absolute path
type TargetResolver interface {
	FileInTarget(rel string) string
}

// Evaluator evaluates trigger trees against a target root
type Evaluator struct {
	env      predicates.Env
	resolver TargetResolver
	logger   zerolog.Logger
}

// NewEvaluator creates an evaluator reading through fs and resolving
// targets with resolver
func NewEvaluator(fs types.FS, resolver TargetResolver, logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		env: predicates.Env{
			FS:     fs,
			Logger: logger,
		},
		resolver: resolver,
		logger:   logger,
	}
}

// WithPlatform overrides the platform identifier seen by runningOnPlatform
func (e *Evaluator) WithPlatform(goos string) *Evaluator {
	e.env.GOOS = goos
	return e
}

// WithLookupEnv overrides the environment seen by haveEnvironmentVariable
func (e *Evaluator) WithLookupEnv(lookup func(string) (string, bool)) *Evaluator {
	e.env.LookupEnv = lookup
	return e
}

// IsApplicable reports whether any of the unit's triggers holds. A unit
// without triggers always applies.
func (e *Evaluator) IsApplicable(unit types.Unit) bool {
	if len(unit.Triggers) == 0 {
		e.logger.Debug().Str("unit", unit.Name).Msg("no triggers, unit applies")
		return true
	}

	for i, trigger := range unit.Triggers {
		if e.Evaluate(trigger, "") {
			e.logger.Debug().
				Str("unit", unit.Name).
				Int("trigger", i).
				Msg("trigger matched, unit applies")
			return true
		}
	}

	e.logger.Debug().Str("unit", unit.Name).Msg("no trigger matched, unit skipped")
	return false
}

// Evaluate evaluates one trigger node. inheritedTarget is the absolute
// target of the enclosing node, empty at the top level; a node declaring
// its own target overrides it for its whole subtree.
func (e *Evaluator) Evaluate(trigger types.Trigger, inheritedTarget string) bool {
	target := inheritedTarget
	if trigger.Target != "" {
		target = e.resolver.FileInTarget(trigger.Target)
	}
	env := e.env.WithTarget(target)

	result := e.base(env, trigger)

	if trigger.And != nil && result {
		result = e.all(trigger.And, target)
	}

	if trigger.Or != nil && !result {
		result = e.any(trigger.Or, target)
	}

	if trigger.Not {
		result = !result
	}

	e.logger.Trace().
		Str("target", target).
		Bool("result", result).
		Msg("trigger evaluated")
	return result
}

// base ORs the node's predicates. A node without predicates is true only
// when it carries no combinators either; otherwise and/or/not work from
// false.
func (e *Evaluator) base(env predicates.Env, trigger types.Trigger) bool {
	present := predicates.Present(trigger)
	if len(present) == 0 {
		return trigger.IsVacuous()
	}

	for _, p := range present {
		if p.Eval(env, trigger) {
			e.logger.Trace().Str("predicate", p.Name).Msg("predicate true")
			return true
		}
	}
	return false
}

func (e *Evaluator) all(triggers []types.Trigger, target string) bool {
	for _, t := range triggers {
		if !e.Evaluate(t, target) {
			return false
		}
	}
	return true
}

func (e *Evaluator) any(triggers []types.Trigger, target string) bool {
	for _, t := range triggers {
		if e.Evaluate(t, target) {
			return true
		}
	}
	return false
}
