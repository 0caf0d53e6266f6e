package predicates

import (
	"strings"

	"github.com/arthur-debert/dictator/pkg/types"
)

func evalHaveLineContaining(env Env, t types.Trigger) bool {
	data, ok := readTarget(env, HaveLineContainingName)
	if !ok {
		return false
	}

	lines := strings.Split(string(data), "\n")
	for _, want := range t.HaveLineContaining {
		if !anyLineContains(lines, want) {
			return false
		}
	}
	return true
}

func anyLineContains(lines []string, s string) bool {
	for _, line := range lines {
		if strings.Contains(strings.TrimSuffix(line, "\r"), s) {
			return true
		}
	}
	return false
}
