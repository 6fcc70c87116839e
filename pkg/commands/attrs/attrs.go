package attrs

import (
	"context"

	"github.com/arthur-debert/garnix/pkg/commands/internal"
	"github.com/arthur-debert/garnix/pkg/logging"
	"github.com/arthur-debert/garnix/pkg/nix"
	"github.com/arthur-debert/garnix/pkg/types"
)

// ListAttributesOptions defines the options for the ListAttributes command.
type ListAttributesOptions struct {
	internal.WorkspaceOptions
}

// ListAttributes lists every buildable attribute of the flake for the
// current system, before any rule is applied.
func ListAttributes(ctx context.Context, opts ListAttributesOptions) (*types.AttributesResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListAttributes").Msg("Executing command")

	ws, err := internal.OpenWorkspace(ctx, opts.WorkspaceOptions)
	if err != nil {
		return nil, err
	}

	flake, err := nix.Open(ws.Root, ws.Runner, ws.Settings)
	if err != nil {
		return nil, err
	}

	attributes, system, err := flake.Discover(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "ListAttributes").Int("attributeCount", len(attributes)).Msg("Command finished")
	return &types.AttributesResult{
		FlakePath:  flake.Path,
		System:     system,
		Attributes: attributes,
	}, nil
}
