package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/types"
	"github.com/arthur-debert/garnix/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			renderer, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		renderer, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
		assert.Error(t, err)
		assert.Nil(t, renderer)
	})
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(&types.AttributesResult{
		System:     "x86_64-linux",
		Attributes: []string{"packages.x86_64-linux.hello"},
	}))
	require.NoError(t, renderer.RenderMessage("done"))

	assert.Equal(t, "available attributes for x86_64-linux:\n    packages.x86_64-linux.hello\ndone\n", buf.String())
}

func TestTerminalRendererKeepsText(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(&types.RunResult{
		Branch:       "main",
		ConfigSource: "defaults",
		Available:    []string{"checks.x86_64-linux.fmt"},
		Matched:      []string{"checks.x86_64-linux.fmt"},
	}))

	out := buf.String()
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "checks.x86_64-linux.fmt")
}

func TestJSONRenderer(t *testing.T) {
	t.Run("result", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
		require.NoError(t, err)

		require.NoError(t, renderer.RenderResult(&types.RunResult{
			Branch:  "main",
			Matched: []string{"a.b"},
			Build:   types.BuildOutcome{Status: types.BuildSucceeded},
		}))

		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "main", doc["branch"])
		assert.Equal(t, map[string]interface{}{"status": "succeeded"}, doc["build"])
	})

	t.Run("error", func(t *testing.T) {
		buf := &bytes.Buffer{}
		renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
		require.NoError(t, err)

		require.NoError(t, renderer.RenderError(
			errors.New(errors.ErrNoFlake, "no flake.nix found").WithDetail("root", "/repo")))

		var doc map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "NO_FLAKE", doc["code"])
		assert.Equal(t, "[NO_FLAKE] no flake.nix found", doc["error"])
		assert.Equal(t, map[string]interface{}{"root": "/repo"}, doc["details"])
	})
}
