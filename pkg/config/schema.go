package config

import (
	"github.com/invopop/jsonschema"
)

// SchemaID identifies the garnix.yaml schema
const SchemaID = "https://garnix.io/schemas/garnix.yaml.json"

// Schema returns the JSON schema of garnix.yaml, for editor completion and
// validation.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(&Config{})
	s.ID = SchemaID
	s.Title = "garnix.yaml"
	return s
}

func inlineSchema(v interface{}) *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, Anonymous: true}
	s := r.Reflect(v)
	s.Version = ""
	return s
}

type excludeBranchesForm struct {
	ExcludeBranches []string `json:"exclude_branches"`
}

// JSONSchema describes both accepted shapes of builds
func (BuildsConfig) JSONSchema() *jsonschema.Schema {
	rule := inlineSchema(&BuildRule{})
	return &jsonschema.Schema{
		Description: "A build rule or a list of build rules",
		OneOf: []*jsonschema.Schema{
			rule,
			{Type: "array", Items: rule},
		},
	}
}

// JSONSchema describes both accepted shapes of incrementalizeBuilds
func (Incrementalize) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "boolean"},
			inlineSchema(&excludeBranchesForm{}),
		},
	}
}
