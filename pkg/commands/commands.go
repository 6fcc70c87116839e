// Package commands provides high-level command implementations for garnix.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the resolution core.
//
// Each command is implemented in its own subdirectory:
//   - run/        - Prepare, Execute and Run
//   - attrs/      - ListAttributes command
//   - showconfig/ - ShowConfig command
//   - internal/   - Workspace resolution shared by all commands
package commands

import (
	"context"

	"github.com/arthur-debert/garnix/pkg/commands/attrs"
	"github.com/arthur-debert/garnix/pkg/commands/internal"
	"github.com/arthur-debert/garnix/pkg/commands/run"
	"github.com/arthur-debert/garnix/pkg/commands/showconfig"
	"github.com/arthur-debert/garnix/pkg/types"
)

// WorkspaceOptions locate the repository and its collaborators
type WorkspaceOptions = internal.WorkspaceOptions

// RunOptions configure a build run.
type RunOptions = run.RunOptions

// RunPlan is a prepared run.
type RunPlan = run.Plan

// PrepareRun resolves what a run would build.
func PrepareRun(ctx context.Context, opts RunOptions) (*RunPlan, error) {
	return run.Prepare(ctx, opts)
}

// ExecuteRun builds a prepared run.
func ExecuteRun(ctx context.Context, plan *RunPlan) error {
	return run.Execute(ctx, plan)
}

// Run resolves and builds the attributes selected for the branch.
func Run(ctx context.Context, opts RunOptions) (*types.RunResult, error) {
	return run.Run(ctx, opts)
}

// ListAttributesOptions configure the attribute listing.
type ListAttributesOptions = attrs.ListAttributesOptions

// ListAttributes lists the buildable flake attributes.
func ListAttributes(ctx context.Context, opts ListAttributesOptions) (*types.AttributesResult, error) {
	return attrs.ListAttributes(ctx, opts)
}

// ShowConfigOptions configure the config display.
type ShowConfigOptions = showconfig.ShowConfigOptions

// ShowConfig describes the loaded garnix.yaml.
func ShowConfig(ctx context.Context, opts ShowConfigOptions) (*types.ConfigResult, error) {
	return showconfig.ShowConfig(ctx, opts)
}
