package nix

import (
	"context"

	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/executor"
	"github.com/arthur-debert/garnix/pkg/flake"
	"github.com/arthur-debert/garnix/pkg/types"
)

// Installables returns <path>#<target> for each attribute
func (f *Flake) Installables(attrs []string) []string {
	out := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, flake.Installable(f.Path, attr))
	}
	return out
}

// useNom decides between nom and nix for builds
func (f *Flake) useNom() bool {
	switch f.settings.UseNom {
	case config.NomAlways:
		return true
	case config.NomNever:
		return false
	default:
		return f.runner.Available(f.settings.NomBin)
	}
}

// BuildCommand returns the command that builds attrs
func (f *Flake) BuildCommand(attrs []string) (types.Command, error) {
	bin := f.settings.NixBin
	if f.useNom() {
		bin = f.settings.NomBin
	}

	args := append([]string{"build"}, f.Installables(attrs)...)

	extra, err := f.settings.ExtraBuildArgs()
	if err != nil {
		return types.Command{}, err
	}
	args = append(args, extra...)

	return types.Command{Bin: bin, Args: args}, nil
}

// Build builds attrs and returns the command it ran. Nothing runs when attrs
// is empty or when dryRun is set.
func (f *Flake) Build(ctx context.Context, attrs []string, dryRun bool) (*types.Command, error) {
	if len(attrs) == 0 {
		return nil, nil
	}

	cmd, err := f.BuildCommand(attrs)
	if err != nil {
		return nil, err
	}

	if dryRun {
		f.logger.Info().Str("command", cmd.String()).Msg("Dry run, not building")
		return &cmd, nil
	}

	f.logger.Info().
		Str("bin", cmd.Bin).
		Int("targets", len(attrs)).
		Msg("Building")

	if err := f.runner.Run(ctx, cmd.Bin, cmd.Args...); err != nil {
		code := executor.ExitCode(err)
		return &cmd, errors.Wrapf(err, errors.ErrNixCommand, "%s build failed with exit code: %d", cmd.Bin, code).
			WithDetail("exit_code", code)
	}
	return &cmd, nil
}
