package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/dictator/pkg/discovery"
	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawUnit(t *testing.T, name, doc string) discovery.RawUnit {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(doc), &v))
	return discovery.RawUnit{
		Name:       name,
		Dir:        "/units/" + name,
		ConfigFile: "/units/" + name + "/.dictatable-config.json",
		Document:   v,
		JSON:       []byte(doc),
	}
}

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func TestCheck_Valid(t *testing.T) {
	v := newValidator(t)

	unit, msgs := v.Check(rawUnit(t, "node", `{
		"message": "node conventions",
		"triggers": [
			{"target": "package.json", "itShould": "EXIST", "and": [{"haveJsonPathValues": [{"path": "$.private", "value": true}]}]},
			{"runningOnPlatform": ["linux", "darwin"], "not": true, "or": [{"haveEnvironmentVariable": {"name": "CI", "value": "true"}}]},
			{}
		],
		"actions": [
			{"target": "run.sh", "chmod": "0755", "message": "make it runnable"},
			{"target": ".editorconfig", "copyFrom": "files/.editorconfig"},
			{"target": "tsconfig.json", "beSubsetOfJsonFile": "tsconfig.json", "haveJsonPathValues": [{"path": "$.compilerOptions.strict", "value": true}]}
		]
	}`))
	require.Empty(t, msgs)

	assert.Equal(t, "node", unit.Name)
	assert.Equal(t, "/units/node", unit.Dir)
	assert.Equal(t, "node conventions", unit.Message)
	require.Len(t, unit.Triggers, 3)
	assert.Equal(t, "package.json", unit.Triggers[0].Target)
	assert.Equal(t, "$.private", unit.Triggers[0].And[0].HaveJSONPathValues[0].Path)
	assert.True(t, unit.Triggers[1].Not)
	assert.Equal(t, "true", *unit.Triggers[1].Or[0].HaveEnvironmentVariable.Value)
	assert.True(t, unit.Triggers[2].IsVacuous())
	require.Len(t, unit.Actions, 3)
	assert.Equal(t, "0755", unit.Actions[0].Chmod)
	assert.Equal(t, "make it runnable", unit.Actions[0].Message)
}

func TestCheck_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "action without target",
			doc:  `{"actions": [{"chmod": "644"}]}`,
			want: []string{"missing properties", "target"},
		},
		{
			name: "unknown top level key",
			doc:  `{"actionz": []}`,
			want: []string{"unexpected additional properties", "actionz"},
		},
		{
			name: "unknown trigger key deep in the tree",
			doc:  `{"triggers": [{"and": [{"or": [{"bogus": 1}]}]}]}`,
			want: []string{"unexpected additional properties", "bogus"},
		},
		{
			name: "chmod is not octal",
			doc:  `{"actions": [{"target": "a", "chmod": "rwx"}]}`,
			want: []string{"pattern"},
		},
		{
			name: "chmod as a number",
			doc:  `{"actions": [{"target": "a", "chmod": 644}]}`,
			want: []string{"type"},
		},
		{
			name: "not must be boolean",
			doc:  `{"triggers": [{"not": "yes"}]}`,
			want: []string{"type"},
		},
		{
			name: "empty json path list",
			doc:  `{"actions": [{"target": "a", "haveJsonPathValues": []}]}`,
			want: []string{"minItems"},
		},
		{
			name: "json path value missing",
			doc:  `{"triggers": [{"haveJsonPathValues": [{"path": "$.a"}]}]}`,
			want: []string{"missing properties", "value"},
		},
		{
			name: "document is not an object",
			doc:  `[1, 2]`,
			want: []string{"type"},
		},
		{
			name: "unsupported json path",
			doc:  `{"actions": [{"target": "a", "haveJsonPathValues": [{"path": "$..name", "value": 1}]}]}`,
			want: []string{"Actions[0].HaveJSONPathValues[0].Path", "not a supported JSON path"},
		},
		{
			name: "unsupported json path in nested trigger",
			doc:  `{"triggers": [{"or": [{"haveJsonPathValues": [{"path": "$.a[*]", "value": 1}]}]}]}`,
			want: []string{"Triggers[0].Or[0].HaveJSONPathValues[0].Path"},
		},
		{
			name: "action without end state",
			doc:  `{"actions": [{"target": "a", "message": "nothing to do"}]}`,
			want: []string{"Actions[0] declares no end state"},
		},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, msgs := v.Check(rawUnit(t, "broken", tt.doc))
			require.NotEmpty(t, msgs)
			joined := strings.Join(msgs, "\n")
			assert.True(t, strings.HasPrefix(joined, "unit broken: "), joined)
			for _, want := range tt.want {
				assert.Contains(t, joined, want)
			}
		})
	}
}

func TestCheck_CollectsEveryRuleViolation(t *testing.T) {
	v := newValidator(t)
	_, msgs := v.Check(rawUnit(t, "u", `{"actions": [
		{"target": "a"},
		{"target": "b", "haveJsonPathValues": [{"path": "$..x", "value": 1}]}
	]}`))
	assert.Len(t, msgs, 2)
}

func TestValidateAll(t *testing.T) {
	v := newValidator(t)
	good := rawUnit(t, "good", `{"actions": [{"target": "a", "chmod": "644"}]}`)
	bad1 := rawUnit(t, "bad1", `{"actions": [{"chmod": "644"}]}`)
	bad2 := rawUnit(t, "bad2", `{"triggers": "nope"}`)

	t.Run("all valid", func(t *testing.T) {
		units, err := v.ValidateAll([]discovery.RawUnit{good})
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, "good", units[0].Name)
	})

	t.Run("one invalid unit rejects the set", func(t *testing.T) {
		units, err := v.ValidateAll([]discovery.RawUnit{good, bad1})
		require.Error(t, err)
		assert.Nil(t, units)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Equal(t, []string{"bad1"}, errors.GetErrorDetails(err)["units"])
	})

	t.Run("messages are joined by newlines", func(t *testing.T) {
		_, err := v.ValidateAll([]discovery.RawUnit{bad1, good, bad2})
		require.Error(t, err)

		var de *errors.DictatorError
		require.ErrorAs(t, err, &de)
		lines := strings.Split(de.Message, "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "unit bad1: "))
		assert.True(t, strings.HasPrefix(lines[1], "unit bad2: "))
	})
}

func TestSchemaMessage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"validating root: type: x", "type: x"},
		{"validating root: validating /properties/actions: minItems: too few", "minItems: too few (at /properties/actions)"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, schemaMessage(stringError(tt.in)))
		})
	}
}

type stringError string

func (e stringError) Error() string { return string(e) }

func TestDocument(t *testing.T) {
	assert.True(t, json.Valid(Document()))
}
