package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIncludesIsFresh(t *testing.T) {
	a := DefaultIncludes()
	a[0] = "changed"
	assert.Equal(t, "*.x86_64-linux.*", DefaultIncludes()[0])
}

func TestBuildRuleAppliesTo(t *testing.T) {
	assert.True(t, NewBuildRule(nil).AppliesTo("anything"))

	rule := BuildRule{Branch: ptr("main")}
	assert.True(t, rule.AppliesTo("main"))
	assert.False(t, rule.AppliesTo("dev"))
}

func TestIncrementalizeEnabledFor(t *testing.T) {
	assert.False(t, Incrementalize{}.EnabledFor("main"))
	assert.True(t, Incrementalize{Enabled: true}.EnabledFor("main"))

	inc := Incrementalize{Enabled: true, ExcludeBranches: []string{"main"}}
	assert.False(t, inc.EnabledFor("main"))
	assert.True(t, inc.EnabledFor("dev"))
}

func TestServersFor(t *testing.T) {
	var none *Config
	assert.Nil(t, none.ServersFor("main"))

	cfg := &Config{Servers: []Server{
		{Configuration: "web", Deployment: Deployment{Type: DeployOnBranch, Branch: "main"}},
		{Configuration: "staging", Deployment: Deployment{Type: DeployOnBranch, Branch: "dev"}},
		{Configuration: "preview", Deployment: Deployment{Type: DeployOnPullRequest}},
	}}
	servers := cfg.ServersFor("main")
	assert.Len(t, servers, 1)
	assert.Equal(t, "web", servers[0].Configuration)
}

func TestIncrementalizeMarshalJSON(t *testing.T) {
	out, err := Incrementalize{Enabled: true}.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "true", string(out))

	out, err = Incrementalize{Enabled: true, ExcludeBranches: []string{"main"}}.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"exclude_branches":["main"]}`, string(out))
}
