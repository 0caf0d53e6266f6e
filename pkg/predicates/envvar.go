package predicates

import (
	"github.com/arthur-debert/dictator/pkg/types"
)

func evalHaveEnvironmentVariable(env Env, t types.Trigger) bool {
	want := t.HaveEnvironmentVariable
	if want.Name == "" {
		return false
	}

	value, ok := env.lookupEnv(want.Name)
	if !ok {
		return false
	}
	if want.Value == nil {
		return true
	}
	return value == *want.Value
}
