package config

import (
	"strings"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/flake"
	"github.com/google/shlex"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes the environment variables read into Settings
const EnvPrefix = "GARNIX_"

// Values of Settings.UseNom
const (
	NomAuto   = "auto"
	NomAlways = "always"
	NomNever  = "never"
)

// Settings configure the tool rather than the builds
type Settings struct {
	NixBin        string `koanf:"nix_bin" validate:"required"`
	NomBin        string `koanf:"nom_bin" validate:"required"`
	UseNom        string `koanf:"use_nom" validate:"oneof=auto always never"`
	BuildArgs     string `koanf:"build_args"`
	ConfigFile    string `koanf:"config_file" validate:"required"`
	DefaultSystem string `koanf:"default_system" validate:"required"`
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"nix_bin":        "nix",
		"nom_bin":        "nom",
		"use_nom":        NomAuto,
		"build_args":     "",
		"config_file":    FileName,
		"default_system": flake.DefaultSystem,
	}
}

// LoadSettings layers GARNIX_* environment variables over the defaults
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	s.UseNom = strings.ToLower(s.UseNom)

	if err := validateStruct(&s, "invalid settings"); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSettings returns the settings used when nothing is overridden
func DefaultSettings() *Settings {
	return &Settings{
		NixBin:        "nix",
		NomBin:        "nom",
		UseNom:        NomAuto,
		ConfigFile:    FileName,
		DefaultSystem: flake.DefaultSystem,
	}
}

// ExtraBuildArgs splits BuildArgs the way a shell would
func (s *Settings) ExtraBuildArgs() ([]string, error) {
	if strings.TrimSpace(s.BuildArgs) == "" {
		return nil, nil
	}
	args, err := shlex.Split(s.BuildArgs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid %sBUILD_ARGS %q", EnvPrefix, s.BuildArgs)
	}
	return args, nil
}
