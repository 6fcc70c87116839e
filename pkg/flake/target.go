package flake

import "strings"

const (
	systemToplevelSuffix    = ".config.system.build.toplevel"
	activationPackageSuffix = ".activationPackage"
)

// BuildTarget maps an attribute to the path nix can actually build.
// System configurations build their toplevel and home configurations their
// activation package; everything else is built as is.
func BuildTarget(attr string) string {
	switch {
	case strings.HasPrefix(attr, "nixosConfigurations."), strings.HasPrefix(attr, "darwinConfigurations."):
		return attr + systemToplevelSuffix
	case strings.HasPrefix(attr, "homeConfigurations."):
		return attr + activationPackageSuffix
	default:
		return attr
	}
}

// Installable returns the `nix build` argument for attr in the flake at flakePath
func Installable(flakePath, attr string) string {
	return flakePath + "#" + BuildTarget(attr)
}
