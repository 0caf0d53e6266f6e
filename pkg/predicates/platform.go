package predicates

import (
	"strings"

	"github.com/arthur-debert/dictator/pkg/types"
)

// platformAliases maps Node style platform names to GOOS values
var platformAliases = map[string]string{
	"win32": "windows",
	"sunos": "solaris",
	"macos": "darwin",
	"osx":   "darwin",
}

// NormalizePlatform returns the GOOS name for a platform identifier
func NormalizePlatform(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := platformAliases[name]; ok {
		return alias
	}
	return name
}

func evalRunningOnPlatform(env Env, t types.Trigger) bool {
	current := env.goos()
	for _, p := range t.RunningOnPlatform {
		if NormalizePlatform(p) == current {
			return true
		}
	}
	env.Logger.Debug().
		Strs("platforms", t.RunningOnPlatform).
		Str("current", current).
		Msg("platform not matched")
	return false
}
