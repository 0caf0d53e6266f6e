package cli_test

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dictator/internal/cli"
	"github.com/arthur-debert/dictator/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup isolates config and log locations and returns a populated env
func setup(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	t.Setenv("DICTATOR_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.SetupUnit("scripts", testutil.UnitSpec{
		Config: `{"actions": [{"target": "run.sh", "chmod": "755", "message": "make it runnable"}]}`,
	})
	env.SetupUnit("windows", testutil.UnitSpec{
		Config: `{"triggers": [{"runningOnPlatform": ["plan9"]}], "actions": [{"target": "x", "chmod": "600"}]}`,
	})
	env.WriteTarget("run.sh", "echo", 0644)
	return env
}

func execute(t *testing.T, env *testutil.TestEnvironment, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-d", env.DictatorRoot, "-t", env.TargetRoot}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	env := setup(t)

	out, err := execute(t, env, "run", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "fixed")
	assert.Contains(t, out, "run.sh have chmod 755 (make it runnable)")
	assert.Contains(t, out, "windows: not applicable")
	assert.Equal(t, fs.FileMode(0755), env.TargetMode("run.sh"))

	out, err = execute(t, env, "run", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "1 unchanged")
}

func TestCheck_PendingExitsTwo(t *testing.T) {
	env := setup(t)

	out, err := execute(t, env, "check", "--format", "text")
	require.Error(t, err)
	code, needsReport := cli.ExitCode(err)
	assert.Equal(t, cli.ExitPending, code)
	assert.False(t, needsReport)
	assert.Contains(t, out, "check (dry run)")
	assert.Contains(t, out, "to fix")
	assert.Equal(t, fs.FileMode(0644), env.TargetMode("run.sh"))

	_, err = execute(t, env, "run", "--dry-run", "--format", "text")
	code, _ = cli.ExitCode(err)
	assert.Equal(t, cli.ExitPending, code)
}

func TestRun_InvalidUnit(t *testing.T) {
	env := setup(t)
	env.SetupUnit("broken", testutil.UnitSpec{Config: `{"actions": [{"chmod": "999"}]}`})

	out, err := execute(t, env, "run", "--format", "text")
	require.Error(t, err)
	code, needsReport := cli.ExitCode(err)
	assert.Equal(t, cli.ExitError, code)
	assert.False(t, needsReport)
	assert.Contains(t, out, "unit broken")
	assert.Equal(t, fs.FileMode(0644), env.TargetMode("run.sh"))
}

func TestRun_PreconditionFailure(t *testing.T) {
	env := setup(t)
	env.SetupUnit("missing", testutil.UnitSpec{Config: `{"actions": [{"target": "nope.sh", "chmod": "700"}]}`})

	out, err := execute(t, env, "run", "--format", "text")
	require.Error(t, err)
	assert.Contains(t, out, "non-existent file")
}

func TestList_JSON(t *testing.T) {
	env := setup(t)

	out, err := execute(t, env, "list", "--format", "json")
	require.NoError(t, err)

	var view struct {
		Command string `json:"command"`
		Units   []struct {
			Name       string `json:"name"`
			Applicable bool   `json:"applicable"`
		} `json:"units"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "list", view.Command)
	require.Len(t, view.Units, 2)
	assert.True(t, view.Units[0].Applicable)
	assert.False(t, view.Units[1].Applicable)
}

func TestValidate(t *testing.T) {
	env := setup(t)

	out, err := execute(t, env, "validate", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "2 units valid")
}

func TestRootConfigSelectsFormat(t *testing.T) {
	env := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(env.DictatorRoot, ".dictator.toml"),
		[]byte("[output]\nformat = \"json\"\n"), 0644))

	out, err := execute(t, env, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, `"command": "validate"`)
}

func TestBadFormat(t *testing.T) {
	env := setup(t)

	_, err := execute(t, env, "list", "--format", "yaml")
	require.Error(t, err)
	code, _ := cli.ExitCode(err)
	assert.Equal(t, cli.ExitError, code)
}

func TestVersion(t *testing.T) {
	env := setup(t)
	out, err := execute(t, env, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dictator version dev")
}

func TestHelpTopics(t *testing.T) {
	env := setup(t)

	out, err := execute(t, env, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "actions")
	assert.Contains(t, out, "triggers")

	out, err = execute(t, env, "help", "triggers")
	require.NoError(t, err)
	assert.Contains(t, out, "Combinators")
}

func TestExitCode(t *testing.T) {
	code, needsReport := cli.ExitCode(nil)
	assert.Equal(t, cli.ExitOK, code)
	assert.False(t, needsReport)

	code, needsReport = cli.ExitCode(assert.AnError)
	assert.Equal(t, cli.ExitError, code)
	assert.True(t, needsReport)
}
