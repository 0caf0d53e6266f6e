package predicates

import (
	"github.com/arthur-debert/dictator/pkg/jsonpath"
	"github.com/arthur-debert/dictator/pkg/types"
)

func evalHaveJSONPathValues(env Env, t types.Trigger) bool {
	data, ok := readTarget(env, HaveJSONPathValuesName)
	if !ok {
		return false
	}
	return MatchJSONPathValues(env, data, t.HaveJSONPathValues)
}

// MatchJSONPathValues reports whether every path in doc holds a deeply
// equal value. An unparseable document or path is false.
func MatchJSONPathValues(env Env, doc []byte, values []types.JSONPathValue) bool {
	for _, pv := range values {
		got, found, err := jsonpath.Get(doc, pv.Path)
		if err != nil {
			env.Logger.Debug().
				Err(err).
				Str("path", pv.Path).
				Str("target", env.TargetFile).
				Msg("JSON path lookup failed")
			return false
		}
		if !found || !jsonpath.Equal(got, pv.Value) {
			return false
		}
	}
	return true
}
