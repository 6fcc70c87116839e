package nix

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/executor"
	"github.com/arthur-debert/garnix/pkg/flake"
	"github.com/arthur-debert/garnix/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FlakeFile marks a directory as a flake
const FlakeFile = "flake.nix"

// Flake is a flake on disk
type Flake struct {
	Path string

	runner   executor.Runner
	settings *config.Settings
	logger   zerolog.Logger
}

// Open returns the flake at root, which must contain a flake.nix
func Open(root string, runner executor.Runner, settings *config.Settings) (*Flake, error) {
	if _, err := os.Stat(filepath.Join(root, FlakeFile)); err != nil {
		return nil, errors.Newf(errors.ErrNoFlake, "no %s found in %s", FlakeFile, root).
			WithDetail("path", root)
	}
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &Flake{
		Path:     root,
		runner:   runner,
		settings: settings,
		logger:   logging.GetLogger("nix").With().Str("flake", root).Logger(),
	}, nil
}

// Show runs nix flake show and parses its JSON output
func (f *Flake) Show(ctx context.Context) (flake.Node, error) {
	out, err := f.runner.Output(ctx, f.settings.NixBin, "flake", "show", "--json", f.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNixCommand, "nix flake show failed: %s", executor.Stderr(err))
	}

	doc, err := flake.ParseDocument(out)
	if err != nil {
		return nil, err
	}
	f.logger.Debug().Int("bytes", len(out)).Msg("Parsed flake show output")
	return doc, nil
}

// CurrentSystem asks nix for the system it builds for. Any failure falls back
// to the configured default system.
func (f *Flake) CurrentSystem(ctx context.Context) string {
	out, err := f.runner.Output(ctx, f.settings.NixBin, "eval", "--expr", "builtins.currentSystem", "--impure")
	if err != nil {
		f.logger.Debug().Err(err).
			Str("system", f.settings.DefaultSystem).
			Msg("Could not evaluate current system, using default")
		return f.settings.DefaultSystem
	}

	system := flake.CleanEvalOutput(string(out))
	if system == "" {
		return f.settings.DefaultSystem
	}
	return system
}

// Discover lists the buildable attributes of the flake for the current
// system. It returns the system alongside the attributes.
func (f *Flake) Discover(ctx context.Context) ([]string, string, error) {
	done := logging.LogOperationStart(f.logger, "discover")
	defer done()

	var (
		doc    flake.Node
		system string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = f.Show(gctx)
		return err
	})
	g.Go(func() error {
		system = f.CurrentSystem(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	attrs := flake.Extract(doc, system)
	f.logger.Info().
		Str("system", system).
		Int("attributes", len(attrs)).
		Msg("Discovered flake attributes")
	return attrs, system, nil
}
