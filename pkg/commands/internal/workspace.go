package internal

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/executor"
	"github.com/arthur-debert/garnix/pkg/git"
	"github.com/arthur-debert/garnix/pkg/logging"
)

// WorkspaceOptions are shared by every command
type WorkspaceOptions struct {
	// Dir is where the command runs from, the working directory when empty
	Dir      string
	Runner   executor.Runner
	Settings *config.Settings
}

// Workspace is the repository a command works on
type Workspace struct {
	Root     string
	Runner   executor.Runner
	Settings *config.Settings
	Git      *git.Git
}

// OpenWorkspace resolves the repository root and fills in default
// collaborators.
func OpenWorkspace(ctx context.Context, opts WorkspaceOptions) (*Workspace, error) {
	logger := logging.GetLogger("commands.workspace")

	settings := opts.Settings
	if settings == nil {
		var err error
		if settings, err = config.LoadSettings(); err != nil {
			return nil, err
		}
	}

	runner := opts.Runner
	if runner == nil {
		runner = executor.New(executor.Options{})
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to get working directory")
		}
		dir = wd
	}

	g := git.New(runner)
	root, err := g.Root(ctx, dir)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Msg("Resolved repository root")
	return &Workspace{
		Root:     root,
		Runner:   runner,
		Settings: settings,
		Git:      g,
	}, nil
}

// ConfigPath is where garnix.yaml is read from
func (w *Workspace) ConfigPath() string {
	if filepath.IsAbs(w.Settings.ConfigFile) {
		return w.Settings.ConfigFile
	}
	return filepath.Join(w.Root, w.Settings.ConfigFile)
}
