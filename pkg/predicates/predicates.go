package predicates

import (
	"os"
	"runtime"

	"github.com/arthur-debert/dictator/pkg/registry"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
)

// Predicate names, matching the trigger keys
const (
	ItShouldName                = "itShould"
	RunningOnPlatformName       = "runningOnPlatform"
	HaveEnvironmentVariableName = "haveEnvironmentVariable"
	HaveJSONPathValuesName      = "haveJsonPathValues"
	HaveLineContainingName      = "haveLineContaining"
)

// Env is everything a predicate may observe
type Env struct {
	FS     types.FS
	Logger zerolog.Logger

	// TargetFile is the resolved absolute path predicates test. Empty when
	// no trigger on the path from the root declared a target.
	TargetFile string

	// GOOS defaults to runtime.GOOS
	GOOS string

	// LookupEnv defaults to os.LookupEnv
	LookupEnv func(key string) (string, bool)
}

// WithTarget returns a copy of the environment bound to another target
func (e Env) WithTarget(target string) Env {
	e.TargetFile = target
	return e
}

func (e Env) goos() string {
	if e.GOOS != "" {
		return e.GOOS
	}
	return runtime.GOOS
}

func (e Env) lookupEnv(key string) (string, bool) {
	if e.LookupEnv != nil {
		return e.LookupEnv(key)
	}
	return os.LookupEnv(key)
}

// Predicate is one base predicate kind
type Predicate struct {
	Name string

	// Present reports whether the trigger carries this predicate
	Present func(t types.Trigger) bool

	// Eval evaluates the predicate; it must not mutate anything
	Eval func(env Env, t types.Trigger) bool
}

var predicates = registry.New[Predicate]()

func init() {
	// Registration order is evaluation order
	registry.MustRegister(predicates, ItShouldName, Predicate{
		Name:    ItShouldName,
		Present: func(t types.Trigger) bool { return t.ItShould != "" },
		Eval:    evalItShould,
	})
	registry.MustRegister(predicates, RunningOnPlatformName, Predicate{
		Name:    RunningOnPlatformName,
		Present: func(t types.Trigger) bool { return t.RunningOnPlatform != nil },
		Eval:    evalRunningOnPlatform,
	})
	registry.MustRegister(predicates, HaveEnvironmentVariableName, Predicate{
		Name:    HaveEnvironmentVariableName,
		Present: func(t types.Trigger) bool { return t.HaveEnvironmentVariable != nil },
		Eval:    evalHaveEnvironmentVariable,
	})
	registry.MustRegister(predicates, HaveJSONPathValuesName, Predicate{
		Name:    HaveJSONPathValuesName,
		Present: func(t types.Trigger) bool { return t.HaveJSONPathValues != nil },
		Eval:    evalHaveJSONPathValues,
	})
	registry.MustRegister(predicates, HaveLineContainingName, Predicate{
		Name:    HaveLineContainingName,
		Present: func(t types.Trigger) bool { return t.HaveLineContaining != nil },
		Eval:    evalHaveLineContaining,
	})
}

// Names returns every predicate name in evaluation order
func Names() []string {
	return predicates.List()
}

// Get returns a predicate by trigger key
func Get(name string) (Predicate, error) {
	return predicates.Get(name)
}

// Present returns the predicates carried by t, in evaluation order
func Present(t types.Trigger) []Predicate {
	var out []Predicate
	predicates.Each(func(_ string, p Predicate) bool {
		if p.Present(t) {
			out = append(out, p)
		}
		return true
	})
	return out
}

// readTarget reads the target file. ok is false when there is no target or
// it cannot be read as a file.
func readTarget(env Env, predicate string) ([]byte, bool) {
	if env.TargetFile == "" {
		env.Logger.Debug().
			Str("predicate", predicate).
			Msg("no target file, predicate is false")
		return nil, false
	}

	data, err := env.FS.ReadFile(env.TargetFile)
	if err != nil {
		env.Logger.Debug().
			Err(err).
			Str("predicate", predicate).
			Str("target", env.TargetFile).
			Msg("target unreadable, predicate is false")
		return nil, false
	}
	return data, true
}
