package config

import (
	"testing"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("environment_overrides", func(t *testing.T) {
		t.Setenv("GARNIX_NIX_BIN", "/opt/nix/bin/nix")
		t.Setenv("GARNIX_USE_NOM", "Never")
		t.Setenv("GARNIX_BUILD_ARGS", "--keep-going -L")
		t.Setenv("GARNIX_DEFAULT_SYSTEM", "aarch64-linux")

		s, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, "/opt/nix/bin/nix", s.NixBin)
		assert.Equal(t, NomNever, s.UseNom)
		assert.Equal(t, "aarch64-linux", s.DefaultSystem)
		assert.Equal(t, "nom", s.NomBin)
	})

	t.Run("invalid_use_nom", func(t *testing.T) {
		t.Setenv("GARNIX_USE_NOM", "sometimes")
		_, err := LoadSettings()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestExtraBuildArgs(t *testing.T) {
	s := DefaultSettings()
	args, err := s.ExtraBuildArgs()
	require.NoError(t, err)
	assert.Nil(t, args)

	s.BuildArgs = `--option substituters "https://a https://b" -L`
	args, err = s.ExtraBuildArgs()
	require.NoError(t, err)
	assert.Equal(t, []string{"--option", "substituters", "https://a https://b", "-L"}, args)
}
