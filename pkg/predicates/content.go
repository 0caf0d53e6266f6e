package predicates

import (
	"regexp"

	"github.com/arthur-debert/dictator/pkg/types"
)

// itShould keywords. Any other value is a regular expression matched
// against the target content.
const (
	ItShouldExist    = "EXIST"
	ItShouldNotExist = "NOT_EXIST"
)

func evalItShould(env Env, t types.Trigger) bool {
	switch t.ItShould {
	case ItShouldExist, ItShouldNotExist:
		if env.TargetFile == "" {
			env.Logger.Debug().
				Str("predicate", ItShouldName).
				Msg("no target file, predicate is false")
			return false
		}
		_, err := env.FS.Stat(env.TargetFile)
		exists := err == nil
		if t.ItShould == ItShouldExist {
			return exists
		}
		return !exists
	}

	re, err := regexp.Compile(t.ItShould)
	if err != nil {
		env.Logger.Warn().
			Err(err).
			Str("pattern", t.ItShould).
			Msg("invalid itShould pattern, predicate is false")
		return false
	}

	data, ok := readTarget(env, ItShouldName)
	if !ok {
		return false
	}
	return re.Match(data)
}
