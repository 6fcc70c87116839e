package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func ptr(s string) *string { return &s }

func TestLoad(t *testing.T) {
	t.Run("missing_file_uses_defaults", func(t *testing.T) {
		cfg, src, err := Load(filepath.Join(t.TempDir(), FileName))
		require.NoError(t, err)
		assert.Equal(t, SourceDefaults, src)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("null_document_is_no_config", func(t *testing.T) {
		for _, content := range []string{"null\n", "~\n", "# comment\nnull\n"} {
			cfg, src, err := Load(writeConfig(t, content))
			require.NoError(t, err, content)
			assert.Nil(t, cfg, content)
			assert.Equal(t, SourceNull, src, content)
		}
	})

	t.Run("empty_file_uses_default_rule", func(t *testing.T) {
		cfg, src, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, SourceFile, src)
		assert.Equal(t, DefaultConfig().Builds, cfg.Builds)
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		_, _, err := Load(writeConfig(t, "builds: [unclosed\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, filepath.Base(FileName), filepath.Base(errors.GetErrorDetails(err)["path"].(string)))
	})
}

func TestParseBuilds(t *testing.T) {
	t.Run("single_rule_mapping", func(t *testing.T) {
		cfg, _, err := Parse([]byte(`
builds:
  include:
    - "packages.x86_64-linux.*"
  exclude:
    - "packages.x86_64-linux.big"
`))
		require.NoError(t, err)
		require.Len(t, cfg.Builds.Rules, 1)
		assert.Equal(t, []string{"packages.x86_64-linux.*"}, cfg.Builds.Rules[0].Include)
		assert.Equal(t, []string{"packages.x86_64-linux.big"}, cfg.Builds.Rules[0].Exclude)
		assert.Nil(t, cfg.Builds.Rules[0].Branch)
	})

	t.Run("list_of_rules_keeps_order", func(t *testing.T) {
		cfg, _, err := Parse([]byte(`
builds:
  - include: ["checks.*.*"]
    branch: main
  - exclude: ["devShell.x86_64-linux"]
`))
		require.NoError(t, err)
		require.Len(t, cfg.Builds.Rules, 2)

		assert.Equal(t, []string{"checks.*.*"}, cfg.Builds.Rules[0].Include)
		assert.Equal(t, ptr("main"), cfg.Builds.Rules[0].Branch)

		assert.Equal(t, DefaultIncludes(), cfg.Builds.Rules[1].Include)
		assert.Equal(t, []string{"devShell.x86_64-linux"}, cfg.Builds.Rules[1].Exclude)
	})

	t.Run("rule_without_include_gets_defaults", func(t *testing.T) {
		cfg, _, err := Parse([]byte("builds:\n  branch: dev\n"))
		require.NoError(t, err)
		require.Len(t, cfg.Builds.Rules, 1)
		assert.Equal(t, DefaultIncludes(), cfg.Builds.Rules[0].Include)
		assert.Empty(t, cfg.Builds.Rules[0].Exclude)
	})

	t.Run("explicit_empty_include_is_kept", func(t *testing.T) {
		cfg, _, err := Parse([]byte("builds:\n  include: []\n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Builds.Rules[0].Include)
	})

	t.Run("null_builds_uses_default_rule", func(t *testing.T) {
		cfg, _, err := Parse([]byte("builds: null\n"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Builds, cfg.Builds)
	})

	t.Run("empty_builds_list_has_no_rules", func(t *testing.T) {
		cfg, _, err := Parse([]byte("builds: []\n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Builds.Rules)
	})

	t.Run("non_mapping_document", func(t *testing.T) {
		_, _, err := Parse([]byte("- a\n- b\n"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestParseIncrementalize(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Incrementalize
	}{
		{"absent", "builds: []\n", Incrementalize{}},
		{"true", "incrementalizeBuilds: true\n", Incrementalize{Enabled: true}},
		{"false", "incrementalizeBuilds: false\n", Incrementalize{}},
		{
			"exclude_branches",
			"incrementalizeBuilds:\n  exclude_branches: [main, release]\n",
			Incrementalize{Enabled: true, ExcludeBranches: []string{"main", "release"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := Parse([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IncrementalizeBuilds)
		})
	}
}

func TestParseServers(t *testing.T) {
	t.Run("valid_deployments", func(t *testing.T) {
		cfg, _, err := Parse([]byte(`
servers:
  - configuration: web
    deployment:
      type: on-branch
      branch: main
  - configuration: preview
    deployment:
      type: on-pull-request
`))
		require.NoError(t, err)
		require.Len(t, cfg.Servers, 2)
		assert.Equal(t, "web", cfg.Servers[0].Configuration)
		assert.Equal(t, DeployOnPullRequest, cfg.Servers[1].Deployment.Type)
	})

	t.Run("unknown_deployment_type", func(t *testing.T) {
		_, _, err := Parse([]byte(`
servers:
  - configuration: web
    deployment:
      type: on-tuesday
`))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Contains(t, err.Error(), "on-tuesday")
	})

	t.Run("on_branch_requires_branch", func(t *testing.T) {
		_, _, err := Parse([]byte(`
servers:
  - configuration: web
    deployment:
      type: on-branch
`))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
		assert.Contains(t, err.Error(), "Branch")
	})

	t.Run("configuration_is_required", func(t *testing.T) {
		_, _, err := Parse([]byte(`
servers:
  - deployment:
      type: on-pull-request
`))
		require.Error(t, err)
		fields := errors.GetErrorDetails(err)["fields"].([]string)
		require.Len(t, fields, 1)
		assert.Contains(t, fields[0], "Configuration is required")
	})
}

func TestMarshal(t *testing.T) {
	cfg, _, err := Parse([]byte(`
builds:
  include: ["a.b"]
  branch: main
incrementalizeBuilds:
  exclude_branches: [main]
`))
	require.NoError(t, err)

	out, err := Marshal(cfg)
	require.NoError(t, err)

	// Rendered YAML parses back to the same config
	again, _, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, cfg.Builds.Rules[0].Include, again.Builds.Rules[0].Include)
	assert.Equal(t, cfg.Builds.Rules[0].Branch, again.Builds.Rules[0].Branch)
	assert.Equal(t, cfg.IncrementalizeBuilds, again.IncrementalizeBuilds)
	assert.Contains(t, string(out), "- include:")
}
