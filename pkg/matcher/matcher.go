// Package matcher selects the attributes to build on a branch from the
// include and exclude patterns of garnix.yaml.
//
// A pattern has two or three dot separated segments, each a literal or "*".
// Patterns only match attributes with the same number of segments, so
// "packages.*" never matches "packages.x86_64-linux.hello".
package matcher

import (
	"sort"
	"strings"

	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/errors"
)

// Wildcard matches any single segment
const Wildcard = "*"

// ErrPatternFormat is matched by errors.Is for every malformed pattern
var ErrPatternFormat = errors.New(errors.ErrPatternFormat, "invalid pattern format")

func patternFormatError(pattern string) error {
	return errors.Newf(errors.ErrPatternFormat,
		"invalid pattern format '%s', must be 'x.y' or 'x.y.z'", pattern).
		WithDetail("pattern", pattern)
}

// Matches reports whether attr is selected by pattern. A pattern and an
// attribute of different lengths never match, whatever the pattern's own
// length.
func Matches(pattern, attr string) (bool, error) {
	patternParts := strings.Split(pattern, ".")
	attrParts := strings.Split(attr, ".")

	if len(patternParts) != len(attrParts) {
		return false, nil
	}
	if len(patternParts) != 2 && len(patternParts) != 3 {
		return false, patternFormatError(pattern)
	}

	for i, p := range patternParts {
		if p != Wildcard && p != attrParts[i] {
			return false, nil
		}
	}
	return true, nil
}

// ValidatePattern checks the number of segments of pattern
func ValidatePattern(pattern string) error {
	n := len(strings.Split(pattern, "."))
	if n != 2 && n != 3 {
		return patternFormatError(pattern)
	}
	return nil
}

// ApplicableRules returns the rules active on branch, in configured order
func ApplicableRules(rules []config.BuildRule, branch string) []config.BuildRule {
	var applicable []config.BuildRule
	for _, r := range rules {
		if r.AppliesTo(branch) {
			applicable = append(applicable, r)
		}
	}
	return applicable
}

// Matching returns the sorted attributes of available to build on branch.
// A nil config selects nothing.
//
// Rules apply in order, each adding its includes to the selection and then
// removing its excludes, so a later rule can bring back an attribute an
// earlier rule excluded.
func Matching(cfg *config.Config, available []string, branch string) ([]string, error) {
	if cfg == nil {
		return []string{}, nil
	}

	selected := make(map[string]struct{})
	for _, rule := range ApplicableRules(cfg.Builds.Rules, branch) {
		for _, pattern := range rule.Include {
			for _, attr := range available {
				ok, err := Matches(pattern, attr)
				if err != nil {
					return nil, err
				}
				if ok {
					selected[attr] = struct{}{}
				}
			}
		}
		for _, pattern := range rule.Exclude {
			for _, attr := range available {
				ok, err := Matches(pattern, attr)
				if err != nil {
					return nil, err
				}
				if ok {
					delete(selected, attr)
				}
			}
		}
	}

	result := make([]string, 0, len(selected))
	for attr := range selected {
		result = append(result, attr)
	}
	sort.Strings(result)
	return result, nil
}
