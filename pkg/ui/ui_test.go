package ui_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dictator/pkg/display"
	"github.com/arthur-debert/dictator/pkg/errors"
	"github.com/arthur-debert/dictator/pkg/style"
	"github.com/arthur-debert/dictator/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() display.CommandResult {
	return display.CommandResult{
		Command: "run",
		Units: []display.UnitResult{{
			Name:       "scripts",
			Applicable: true,
			Status:     style.StatusChanged,
			Items: []display.ItemResult{{
				Kind:   "chmod",
				Info:   "run.sh have chmod 755",
				Status: style.StatusChanged,
			}},
		}},
		Summary: display.Summary{Units: 1, Applicable: 1, Items: 1,
			Counts: map[style.Status]int{style.StatusChanged: 1}},
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"TERM", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yaml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, &bytes.Buffer{}))
	assert.Equal(t, ui.FormatTerminal, ui.Resolve(ui.FormatAuto, &bytes.Buffer{}))

	// A regular file is never a terminal
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, f))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			require.NoError(t, renderer.RenderResult(sampleResult()))
			assert.Contains(t, buf.String(), "run.sh have chmod 755")
		})
	}

	renderer, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, renderer)
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(sampleResult()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run", decoded["command"])
	units := decoded["units"].([]interface{})
	unit := units[0].(map[string]interface{})
	assert.Equal(t, "changed", unit["status"])

	buf.Reset()
	require.NoError(t, renderer.RenderError(errors.New(errors.ErrConfigValid, "unit bad: nope")))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "CONFIG_INVALID", decoded["code"])
}

func TestTextRenderer_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderError(errors.New(errors.ErrDiscovery, "no units")))
	assert.Equal(t, "Error: [DISCOVERY] no units\n", buf.String())
}
