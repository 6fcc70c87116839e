// Package config loads garnix.yaml and the tool settings.
//
// garnix.yaml is read with koanf and decoded through mapstructure hooks that
// normalize its loose shapes:
//
//	builds:                      # a single rule ...
//	  include: ["packages.*.*"]
//
//	builds:                      # ... or a list of rules
//	  - include: ["packages.*.*"]
//	    branch: main
//	  - exclude: ["checks.*.*"]
//
//	incrementalizeBuilds: true   # or {exclude_branches: [main]}
//
// Both builds shapes decode into BuildsConfig.Rules, so later stages only
// see a list. A rule without include gets DefaultIncludes.
//
// Settings for the tool itself (nix binaries, extra build arguments) come
// from built-in defaults overridden by GARNIX_* environment variables.
package config
