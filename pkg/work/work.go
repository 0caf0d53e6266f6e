package work

import (
	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/registry"
	"github.com/arthur-debert/dictator/pkg/types"
	"github.com/rs/zerolog"
)

// Work is one convergent unit of change
type Work interface {
	// IsApplied reports whether the end state already holds. It returns
	// false without error when the target does not exist yet.
	IsApplied() (bool, error)

	// Apply reaches the end state
	Apply() error

	// Info describes the end state
	Info() string
}

// Resolver maps unit-declared paths to absolute ones
type Resolver interface {
	FileInTarget(rel string) string
	FileInUnit(unitDir, rel string) string
}

// Context carries what a factory needs to build a work item
type Context struct {
	FS       types.FS
	Resolver Resolver
	Logger   zerolog.Logger
	Unit     types.Unit
}

// Factory builds the work item for one key of an action
type Factory func(ctx Context, action types.Action) (Work, error)

// Item is a work item tagged with where it came from
type Item struct {
	Work

	Unit    string
	Kind    string
	Message string
}

var factories = registry.New[Factory]()

func init() {
	registry.MustRegister(factories, types.ActionCopyFrom, Factory(newCopyWork))
	registry.MustRegister(factories, types.ActionBeSubsetOfJSONFile, Factory(newSubsetOfJSONFileWork))
	registry.MustRegister(factories, types.ActionChmod, Factory(newChmodWork))
	registry.MustRegister(factories, types.ActionHaveJSONPathValues, Factory(newJSONPathValuesWork))
}

// Kinds returns the registered action keys
func Kinds() []string {
	return factories.List()
}

// Creator expands units into work items
type Creator struct {
	fs       types.FS
	resolver Resolver
	logger   zerolog.Logger
}

// NewCreator creates a Creator
func NewCreator(fs types.FS, resolver Resolver, logger zerolog.Logger) *Creator {
	return &Creator{fs: fs, resolver: resolver, logger: logger}
}

// WorkFor returns the work items of a unit: actions in declaration order,
// and within one action one item per key in types.ActionKinds order.
func (c *Creator) WorkFor(unit types.Unit) ([]Item, error) {
	ctx := Context{
		FS:       c.fs,
		Resolver: c.resolver,
		Logger:   c.logger.With().Str("unit", unit.Name).Logger(),
		Unit:     unit,
	}

	c.logger.Debug().
		Str("unit", unit.Name).
		Str("config", unit.ConfigFile).
		Int("actions", len(unit.Actions)).
		Msg("creating work")

	var items []Item
	for i, action := range unit.Actions {
		for _, kind := range action.Kinds() {
			factory, err := factories.Get(kind)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrActionInvalid, "no work for action key %q", kind)
			}
			w, err := factory(ctx, action)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrActionInvalid, "unit %s action %d", unit.Name, i).
					WithDetail("unit", unit.Name).
					WithDetail("kind", kind)
			}
			items = append(items, Item{
				Work:    w,
				Unit:    unit.Name,
				Kind:    kind,
				Message: action.Message,
			})
		}
	}
	return items, nil
}

// targetState stats a target. exists is false without error when it is
// missing.
func targetState(fs types.FS, path string) (exists bool, err error) {
	if _, err := fs.Stat(path); err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).
			WithDetail("path", path)
	}
	return true, nil
}
