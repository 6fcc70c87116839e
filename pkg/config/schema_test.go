package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	s := Schema()
	assert.Equal(t, SchemaID, string(s.ID))

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &doc))

	props := doc["properties"].(map[string]interface{})
	require.Contains(t, props, "builds")
	require.Contains(t, props, "incrementalizeBuilds")
	require.Contains(t, props, "servers")

	builds := props["builds"].(map[string]interface{})
	assert.Len(t, builds["oneOf"], 2)

	inc := props["incrementalizeBuilds"].(map[string]interface{})
	assert.Len(t, inc["oneOf"], 2)

	assert.Contains(t, string(out), "on-pull-request")
}
