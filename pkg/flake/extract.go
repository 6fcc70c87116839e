package flake

import "strings"

// DefaultSystem is used when the running system cannot be detected
const DefaultSystem = "x86_64-linux"

// Kind is the classification of a node during extraction
type Kind int

const (
	// Intermediate nodes are walked into
	Intermediate Kind = iota
	// Buildable nodes are emitted as attributes
	Buildable
)

func (k Kind) String() string {
	if k == Buildable {
		return "buildable"
	}
	return "intermediate"
}

var (
	platformPrefixes = []string{"x86_64-", "aarch64-"}

	buildableTypes = map[string]bool{
		"derivation":          true,
		"nixos-configuration": true,
	}

	// Configurations in these categories carry no type marker but are
	// always build targets.
	alwaysBuildable = map[string]bool{
		"darwinConfigurations": true,
		"homeConfigurations":   true,
	}
)

// Extract flattens the introspection document into dotted attribute paths,
// in document order. Platform subtrees other than currentSystem are skipped.
func Extract(doc Node, currentSystem string) []string {
	attrs := []string{}
	walk(doc, nil, currentSystem, &attrs)
	return attrs
}

func walk(node Node, path []string, currentSystem string, attrs *[]string) {
	m, ok := node.(*Mapping)
	if !ok {
		return
	}

	for _, e := range m.Entries {
		if len(path) == 1 && isForeignPlatform(e.Key, currentSystem) {
			continue
		}

		childPath := make([]string, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = e.Key

		if Classify(e.Value, childPath) == Buildable {
			*attrs = append(*attrs, strings.Join(childPath, "."))
			continue
		}
		walk(e.Value, childPath, currentSystem, attrs)
	}
}

// Classify decides whether the node at path is a build target. path is the
// full key path of the node, root category first.
func Classify(node Node, path []string) Kind {
	if len(path) > 1 && alwaysBuildable[path[0]] {
		return Buildable
	}

	m, ok := node.(*Mapping)
	if !ok {
		return Intermediate
	}

	if t, ok := m.Get("type"); ok {
		if s, ok := t.(*Scalar); ok && s.Kind == StringScalar && buildableTypes[s.Text] {
			return Buildable
		}
		return Intermediate
	}

	for _, e := range m.Entries {
		if _, nested := e.Value.(*Mapping); nested {
			return Intermediate
		}
	}
	return Buildable
}

// isForeignPlatform reports whether key names a platform other than the
// current one.
func isForeignPlatform(key, currentSystem string) bool {
	if key == "" || key == currentSystem || !strings.Contains(key, "-") {
		return false
	}
	for _, prefix := range platformPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// CleanEvalOutput strips the whitespace and quoting `nix eval` puts around a
// string result.
func CleanEvalOutput(output string) string {
	return strings.Trim(strings.TrimSpace(output), `"`)
}
