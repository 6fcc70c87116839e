package matcher

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func branch(b string) *string { return &b }

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		attr     string
		expected bool
	}{
		{"exact literal", "packages.x86_64-linux.hello", "packages.x86_64-linux.hello", true},
		{"first segment differs", "checks.x86_64-linux.hello", "packages.x86_64-linux.hello", false},
		{"second segment differs", "packages.aarch64-linux.hello", "packages.x86_64-linux.hello", false},
		{"third segment differs", "packages.x86_64-linux.world", "packages.x86_64-linux.hello", false},
		{"three wildcards", "*.*.*", "packages.x86_64-linux.hello", true},
		{"two wildcards", "*.*", "devShell.x86_64-linux", true},
		{"mixed", "*.x86_64-linux.*", "checks.x86_64-linux.fmt", true},
		{"mixed no match", "*.x86_64-linux.*", "checks.aarch64-linux.fmt", false},
		{"shorter pattern", "packages.*", "packages.x86_64-linux.hello", false},
		{"longer pattern", "*.*.*", "nixosConfigurations.host", false},
		{"wildcard is a whole segment", "pack*.x86_64-linux", "packages.x86_64-linux", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Matches(tt.pattern, tt.attr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
		})
	}
}

func TestMatchesArity(t *testing.T) {
	t.Run("length_mismatch_short_circuits", func(t *testing.T) {
		for _, tc := range [][2]string{
			{"a.b.c.d", "a.b.c"},
			{"a", "a.b"},
			{"a.b.c.d.e", "x.y"},
		} {
			ok, err := Matches(tc[0], tc[1])
			assert.NoError(t, err, tc[0])
			assert.False(t, ok, tc[0])
		}
	})

	t.Run("equal_invalid_length_errors", func(t *testing.T) {
		for _, p := range []string{"a.b.c.d", "a", "*.*.*.*"} {
			_, err := Matches(p, p)
			require.Error(t, err, p)
			assert.True(t, stderrors.Is(err, ErrPatternFormat), p)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPatternFormat), p)
			assert.Equal(t, p, errors.GetErrorDetails(err)["pattern"])
			assert.Contains(t, err.Error(), "must be 'x.y' or 'x.y.z'")
		}
	})
}

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, ValidatePattern("a.b"))
	assert.NoError(t, ValidatePattern("*.x86_64-linux.*"))
	assert.Error(t, ValidatePattern("a"))
	assert.Error(t, ValidatePattern("a.b.c.d"))
}

func TestApplicableRules(t *testing.T) {
	rules := []config.BuildRule{
		{Include: []string{"packages.*.*"}, Branch: branch("main")},
		{Include: []string{"checks.*.*"}, Branch: branch("dev")},
		{Include: []string{"devShells.*"}},
	}

	applicable := ApplicableRules(rules, "main")
	require.Len(t, applicable, 2)
	assert.Equal(t, rules[0], applicable[0])
	assert.Equal(t, rules[2], applicable[1])

	assert.Len(t, ApplicableRules(rules, "Main"), 1)
	assert.Empty(t, ApplicableRules(nil, "main"))
}

func TestMatching(t *testing.T) {
	available := []string{
		"packages.x86_64-linux.hello",
		"packages.x86_64-linux.world",
		"checks.x86_64-linux.fmt",
		"devShells.x86_64-linux",
		"nixosConfigurations.host",
	}

	t.Run("nil_config_selects_nothing", func(t *testing.T) {
		result, err := Matching(nil, []string{"packages.x86_64-linux.hello"}, "main")
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("branch_scoping", func(t *testing.T) {
		cfg := &config.Config{Builds: config.BuildsConfig{Rules: []config.BuildRule{
			{Include: []string{"packages.*.*"}, Branch: branch("main")},
			{Include: []string{"checks.*.*"}, Branch: branch("dev")},
			{Include: []string{"devShells.*"}},
		}}}

		result, err := Matching(cfg, available, "main")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"devShells.x86_64-linux",
			"packages.x86_64-linux.hello",
			"packages.x86_64-linux.world",
		}, result)
		assert.NotContains(t, result, "checks.x86_64-linux.fmt")
	})

	t.Run("later_include_overrides_earlier_exclude", func(t *testing.T) {
		cfg := &config.Config{Builds: config.BuildsConfig{Rules: []config.BuildRule{
			{Include: []string{"packages.*.*"}},
			{Exclude: []string{"packages.x86_64-linux.hello"}},
			{Include: []string{"packages.x86_64-linux.hello"}},
		}}}

		result, err := Matching(cfg, available, "main")
		require.NoError(t, err)
		assert.Contains(t, result, "packages.x86_64-linux.hello")
	})

	t.Run("exclude_within_rule_wins", func(t *testing.T) {
		cfg := &config.Config{Builds: config.BuildsConfig{Rules: []config.BuildRule{
			{Include: []string{"packages.*.*"}, Exclude: []string{"*.*.hello"}},
		}}}

		result, err := Matching(cfg, available, "main")
		require.NoError(t, err)
		assert.Equal(t, []string{"packages.x86_64-linux.world"}, result)
	})

	t.Run("default_config", func(t *testing.T) {
		result, err := Matching(config.DefaultConfig(), available, "main")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"checks.x86_64-linux.fmt",
			"nixosConfigurations.host",
			"packages.x86_64-linux.hello",
			"packages.x86_64-linux.world",
		}, result)
	})

	t.Run("no_rules", func(t *testing.T) {
		result, err := Matching(&config.Config{}, available, "main")
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("malformed_pattern_aborts", func(t *testing.T) {
		cfg := &config.Config{Builds: config.BuildsConfig{Rules: []config.BuildRule{
			{Include: []string{"packages.*.*"}},
			{Include: []string{"nixosConfigurations"}},
		}}}

		result, err := Matching(cfg, []string{"packages.x86_64-linux.hello", "nixosConfigurations"}, "main")
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, stderrors.Is(err, ErrPatternFormat))
	})

	t.Run("malformed_pattern_without_same_length_attr_is_harmless", func(t *testing.T) {
		cfg := &config.Config{Builds: config.BuildsConfig{Rules: []config.BuildRule{
			{Include: []string{"a.b.c.d"}},
		}}}

		result, err := Matching(cfg, available, "main")
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestMatchingIsDeterministic(t *testing.T) {
	available := []string{
		"packages.x86_64-linux.b",
		"packages.x86_64-linux.a",
		"checks.x86_64-linux.c",
	}
	reversed := []string{available[2], available[1], available[0]}

	forward := &config.Config{Builds: config.BuildsConfig{Rules: []config.BuildRule{
		{Include: []string{"packages.*.*", "checks.*.*"}},
	}}}
	backward := &config.Config{Builds: config.BuildsConfig{Rules: []config.BuildRule{
		{Include: []string{"checks.*.*", "packages.*.*"}},
	}}}

	a, err := Matching(forward, available, "main")
	require.NoError(t, err)
	b, err := Matching(backward, reversed, "main")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, []string{
		"checks.x86_64-linux.c",
		"packages.x86_64-linux.a",
		"packages.x86_64-linux.b",
	}, a)
}
