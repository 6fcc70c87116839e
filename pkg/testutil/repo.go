package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MinimalFlake is a flake.nix good enough for presence checks
const MinimalFlake = `{
  outputs = { self }: { };
}
`

// FileTree maps relative paths to file contents
type FileTree map[string]string

// WriteTree creates the files of tree under root
func WriteTree(t *testing.T, root string, tree FileTree) {
	t.Helper()
	for rel, content := range tree {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// NewRepo returns a temporary directory holding tree. A flake.nix is added
// unless tree sets one.
func NewRepo(t *testing.T, tree FileTree) string {
	t.Helper()
	root := t.TempDir()
	if _, ok := tree["flake.nix"]; !ok {
		WriteTree(t, root, FileTree{"flake.nix": MinimalFlake})
	}
	WriteTree(t, root, tree)
	return root
}

// NewGitRepo is NewRepo with a .git/HEAD pointing at branch
func NewGitRepo(t *testing.T, branch string, tree FileTree) string {
	t.Helper()
	root := NewRepo(t, tree)
	WriteTree(t, root, FileTree{".git/HEAD": "ref: refs/heads/" + branch + "\n"})
	return root
}
