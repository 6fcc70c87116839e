package config

import (
	"encoding/json"
	"slices"
)

// FileName is the configuration file looked up at the repository root
const FileName = "garnix.yaml"

// Deployment types
const (
	DeployOnPullRequest = "on-pull-request"
	DeployOnBranch      = "on-branch"
)

// Config is the decoded garnix.yaml. A nil *Config means "no config" and
// selects nothing for building.
type Config struct {
	Builds               BuildsConfig   `koanf:"builds" yaml:"builds" json:"builds,omitempty"`
	IncrementalizeBuilds Incrementalize `koanf:"incrementalizeBuilds" yaml:"incrementalizeBuilds" json:"incrementalizeBuilds,omitempty"`
	Servers              []Server       `koanf:"servers" yaml:"servers,omitempty" json:"servers,omitempty" validate:"dive"`
}

// BuildsConfig is the normalized list of build rules, in configured order
type BuildsConfig struct {
	Rules []BuildRule `koanf:"rules"`
}

// BuildRule selects attributes for a branch. A nil Branch applies to every
// branch.
type BuildRule struct {
	Include []string `koanf:"include" yaml:"include" json:"include,omitempty"`
	Exclude []string `koanf:"exclude" yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Branch  *string  `koanf:"branch" yaml:"branch,omitempty" json:"branch,omitempty"`
}

// Incrementalize controls incremental builds. It is written either as a
// boolean or as {exclude_branches: [...]}, which enables it everywhere but
// the listed branches.
type Incrementalize struct {
	Enabled         bool     `koanf:"enabled"`
	ExcludeBranches []string `koanf:"exclude_branches"`
}

// Server is a NixOS configuration deployed by garnix
type Server struct {
	Configuration string     `koanf:"configuration" yaml:"configuration" json:"configuration" validate:"required"`
	Deployment    Deployment `koanf:"deployment" yaml:"deployment" json:"deployment"`
}

// Deployment says when a server is deployed
type Deployment struct {
	Type   string `koanf:"type" yaml:"type" json:"type" validate:"required,oneof=on-pull-request on-branch" jsonschema:"enum=on-pull-request,enum=on-branch"`
	Branch string `koanf:"branch" yaml:"branch,omitempty" json:"branch,omitempty" validate:"required_if=Type on-branch"`
}

// DefaultIncludes returns the include patterns of a rule that does not list
// its own.
func DefaultIncludes() []string {
	return []string{
		"*.x86_64-linux.*",
		"defaultPackage.x86_64-linux",
		"devShell.x86_64-linux",
		"homeConfigurations.*",
		"darwinConfigurations.*",
		"nixosConfigurations.*",
	}
}

// NewBuildRule returns a rule for every branch with the given includes and no
// excludes.
func NewBuildRule(include []string) BuildRule {
	return BuildRule{
		Include: include,
		Exclude: []string{},
	}
}

// DefaultConfig is used when the repository has no garnix.yaml
func DefaultConfig() *Config {
	return &Config{
		Builds: BuildsConfig{Rules: []BuildRule{NewBuildRule(DefaultIncludes())}},
	}
}

// AppliesTo reports whether the rule is active on branch
func (r BuildRule) AppliesTo(branch string) bool {
	return r.Branch == nil || *r.Branch == branch
}

// EnabledFor reports whether builds on branch are incremental
func (i Incrementalize) EnabledFor(branch string) bool {
	return i.Enabled && !slices.Contains(i.ExcludeBranches, branch)
}

// ServersFor returns the servers deployed when branch is built
func (c *Config) ServersFor(branch string) []Server {
	if c == nil {
		return nil
	}
	var servers []Server
	for _, s := range c.Servers {
		if s.Deployment.Type == DeployOnBranch && s.Deployment.Branch == branch {
			servers = append(servers, s)
		}
	}
	return servers
}

// MarshalYAML writes the rules as a list
func (b BuildsConfig) MarshalYAML() (interface{}, error) {
	return b.Rules, nil
}

// MarshalJSON writes the rules as a list
func (b BuildsConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Rules)
}

func (i Incrementalize) shorthand() interface{} {
	if i.Enabled && len(i.ExcludeBranches) > 0 {
		return map[string][]string{"exclude_branches": i.ExcludeBranches}
	}
	return i.Enabled
}

// MarshalYAML writes the boolean or exclude_branches form
func (i Incrementalize) MarshalYAML() (interface{}, error) {
	return i.shorthand(), nil
}

// MarshalJSON writes the boolean or exclude_branches form
func (i Incrementalize) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.shorthand())
}
