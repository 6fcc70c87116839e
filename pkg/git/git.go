// Package git finds the repository root and the branch being built.
package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/executor"
	"github.com/arthur-debert/garnix/pkg/logging"
)

const headRefPrefix = "ref: refs/heads/"

// Git runs git through a Runner
type Git struct {
	runner executor.Runner
	bin    string
}

// New returns a Git using the git binary on PATH
func New(runner executor.Runner) *Git {
	return &Git{runner: runner, bin: "git"}
}

// Root returns the top level directory of the repository containing dir
func (g *Git) Root(ctx context.Context, dir string) (string, error) {
	logger := logging.GetLogger("git")

	out, err := g.runner.Output(ctx, g.bin, "-C", dir, "rev-parse", "--show-toplevel")
	if err == nil {
		if root := strings.TrimSpace(string(out)); root != "" {
			return root, nil
		}
	}

	logger.Debug().Err(err).Str("dir", dir).Msg("git rev-parse failed, looking for .git")

	root, ok := findDotGit(dir)
	if !ok {
		return "", errors.Newf(errors.ErrNotInGitRepo, "not in a git repository: %s", dir).
			WithDetail("dir", dir)
	}
	return root, nil
}

// CurrentBranch returns the branch checked out at root. A detached HEAD is
// an error since rules are scoped by branch name.
func (g *Git) CurrentBranch(ctx context.Context, root string) (string, error) {
	logger := logging.GetLogger("git")

	out, err := g.runner.Output(ctx, g.bin, "-C", root, "symbolic-ref", "--short", "HEAD")
	if err == nil {
		if branch := strings.TrimSpace(string(out)); branch != "" {
			return branch, nil
		}
	}

	logger.Debug().Err(err).Str("root", root).Msg("git symbolic-ref failed, reading .git/HEAD")
	return ReadHEAD(root)
}

// BranchOrOverride returns override when set and the current branch
// otherwise.
func (g *Git) BranchOrOverride(ctx context.Context, root, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return g.CurrentBranch(ctx, root)
}

// ReadHEAD reads the branch name from <root>/.git/HEAD
func ReadHEAD(root string) (string, error) {
	path := filepath.Join(root, ".git", "HEAD")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrGit, "could not read .git/HEAD").
			WithDetail("path", path)
	}

	content := strings.TrimSpace(string(data))
	if !strings.HasPrefix(content, headRefPrefix) {
		return "", errors.New(errors.ErrGit, "HEAD is not pointing to a branch").
			WithDetail("head", content)
	}
	return strings.TrimPrefix(content, headRefPrefix), nil
}

func findDotGit(dir string) (string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(abs, ".git")); err == nil {
			return abs, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}
