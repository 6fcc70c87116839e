package run

import (
	"context"

	"github.com/arthur-debert/garnix/pkg/commands/internal"
	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/executor"
	"github.com/arthur-debert/garnix/pkg/logging"
	"github.com/arthur-debert/garnix/pkg/matcher"
	"github.com/arthur-debert/garnix/pkg/nix"
	"github.com/arthur-debert/garnix/pkg/types"
)

// RunOptions defines the options for the Run command.
type RunOptions struct {
	internal.WorkspaceOptions
	// AsBranch replaces the checked out branch when set
	AsBranch string
	DryRun   bool
}

// Plan is a resolved run waiting to be executed
type Plan struct {
	Result *types.RunResult

	flake   *nix.Flake
	matched []string
}

// Prepare resolves the branch, config and flake attributes of a run and
// decides what to build. Nothing is built yet.
func Prepare(ctx context.Context, opts RunOptions) (*Plan, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().
		Str("command", "Run").
		Str("asBranch", opts.AsBranch).
		Bool("dryRun", opts.DryRun).
		Msg("Executing command")

	ws, err := internal.OpenWorkspace(ctx, opts.WorkspaceOptions)
	if err != nil {
		return nil, err
	}

	branch, err := ws.Git.BranchOrOverride(ctx, ws.Root, opts.AsBranch)
	if err != nil {
		return nil, err
	}

	cfg, source, err := config.Load(ws.ConfigPath())
	if err != nil {
		return nil, err
	}

	flake, err := nix.Open(ws.Root, ws.Runner, ws.Settings)
	if err != nil {
		return nil, err
	}

	available, system, err := flake.Discover(ctx)
	if err != nil {
		return nil, err
	}

	matched, err := matcher.Matching(cfg, available, branch)
	if err != nil {
		return nil, err
	}

	result := &types.RunResult{
		Branch:       branch,
		ConfigSource: source.String(),
		ConfigPath:   ws.ConfigPath(),
		System:       system,
		Available:    available,
		Matched:      matched,
		Targets:      flake.Installables(matched),
		DryRun:       opts.DryRun,
		Build:        types.BuildOutcome{Status: types.BuildSkipped},
	}
	if cfg != nil {
		result.Incremental = cfg.IncrementalizeBuilds.EnabledFor(branch)
		for _, s := range cfg.ServersFor(branch) {
			result.Servers = append(result.Servers, s.Configuration)
		}
	}

	if len(matched) > 0 {
		cmd, err := flake.BuildCommand(matched)
		if err != nil {
			return nil, err
		}
		result.Command = &cmd
		result.Build.Status = types.BuildPlanned
	}

	log.Info().
		Str("command", "Run").
		Str("branch", branch).
		Int("available", len(available)).
		Int("matched", len(matched)).
		Msg("Run planned")

	return &Plan{Result: result, flake: flake, matched: matched}, nil
}

// Execute builds the planned attributes. Dry runs and empty plans return
// without running anything.
func Execute(ctx context.Context, plan *Plan) error {
	result := plan.Result
	if result.Build.Status != types.BuildPlanned || result.DryRun {
		return nil
	}

	if _, err := plan.flake.Build(ctx, plan.matched, false); err != nil {
		result.Build = types.BuildOutcome{
			Status:   types.BuildFailed,
			ExitCode: executor.ExitCode(err),
			Error:    err.Error(),
		}
		return err
	}

	result.Build.Status = types.BuildSucceeded
	return nil
}

// Run prepares and executes a run
func Run(ctx context.Context, opts RunOptions) (*types.RunResult, error) {
	plan, err := Prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = Execute(ctx, plan)
	return plan.Result, err
}
