package config

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

var (
	buildsType         = reflect.TypeOf(BuildsConfig{})
	buildRuleType      = reflect.TypeOf(BuildRule{})
	incrementalizeType = reflect.TypeOf(Incrementalize{})
)

// decodeHooks returns the hooks that normalize garnix.yaml shapes before
// mapstructure assigns them to Config.
func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		buildsHookFunc(),
		buildRuleHookFunc(),
		incrementalizeHookFunc(),
	)
}

// buildsHookFunc accepts a single rule mapping or a list of rules
func buildsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != buildsType {
			return data, nil
		}
		switch v := data.(type) {
		case map[string]interface{}:
			return map[string]interface{}{"rules": []interface{}{v}}, nil
		case []interface{}:
			return map[string]interface{}{"rules": v}, nil
		}
		return data, nil
	}
}

// buildRuleHookFunc fills in the default includes of a rule that omits them
func buildRuleHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != buildRuleType {
			return data, nil
		}
		m, ok := data.(map[string]interface{})
		if !ok || m["include"] != nil {
			return data, nil
		}

		rule := make(map[string]interface{}, len(m)+1)
		for k, v := range m {
			rule[k] = v
		}
		rule["include"] = DefaultIncludes()
		return rule, nil
	}
}

// incrementalizeHookFunc accepts a boolean or {exclude_branches: [...]}
func incrementalizeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != incrementalizeType {
			return data, nil
		}
		switch v := data.(type) {
		case bool:
			return map[string]interface{}{"enabled": v}, nil
		case map[string]interface{}:
			out := make(map[string]interface{}, len(v)+1)
			for k, val := range v {
				out[k] = val
			}
			out["enabled"] = true
			return out, nil
		}
		return data, nil
	}
}
