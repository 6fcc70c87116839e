package showconfig

import (
	"context"

	"github.com/arthur-debert/garnix/pkg/commands/internal"
	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/logging"
	"github.com/arthur-debert/garnix/pkg/matcher"
	"github.com/arthur-debert/garnix/pkg/types"
)

// ShowConfigOptions defines the options for the ShowConfig command.
type ShowConfigOptions struct {
	internal.WorkspaceOptions
	// Branch marks the rules that apply to it. The checked out branch is
	// used when empty and git can tell it.
	Branch string
	// Check validates every pattern
	Check bool
}

// ShowConfig loads garnix.yaml and describes its normalized rules
func ShowConfig(ctx context.Context, opts ShowConfigOptions) (*types.ConfigResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ShowConfig").Bool("check", opts.Check).Msg("Executing command")

	ws, err := internal.OpenWorkspace(ctx, opts.WorkspaceOptions)
	if err != nil {
		return nil, err
	}

	cfg, source, err := config.Load(ws.ConfigPath())
	if err != nil {
		return nil, err
	}

	branch := opts.Branch
	if branch == "" {
		if b, err := ws.Git.CurrentBranch(ctx, ws.Root); err == nil {
			branch = b
		} else {
			log.Debug().Err(err).Msg("No current branch, not marking applicable rules")
		}
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	result := &types.ConfigResult{
		Path:    ws.ConfigPath(),
		Source:  source.String(),
		Branch:  branch,
		Rules:   []types.RuleInfo{},
		YAML:    string(out),
		Checked: opts.Check,
	}

	if cfg != nil {
		for _, rule := range cfg.Builds.Rules {
			result.Rules = append(result.Rules, types.RuleInfo{
				Include: rule.Include,
				Exclude: rule.Exclude,
				Branch:  rule.Branch,
				Applies: branch != "" && rule.AppliesTo(branch),
			})
		}
	}

	if opts.Check {
		result.Problems = checkPatterns(cfg)
	}

	log.Info().
		Str("command", "ShowConfig").
		Int("ruleCount", len(result.Rules)).
		Int("problemCount", len(result.Problems)).
		Msg("Command finished")
	return result, nil
}

// checkPatterns lists the malformed include and exclude patterns
func checkPatterns(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}

	var problems []string
	for _, rule := range cfg.Builds.Rules {
		for _, patterns := range [][]string{rule.Include, rule.Exclude} {
			for _, p := range patterns {
				err := matcher.ValidatePattern(p)
				if err == nil {
					continue
				}
				if gerr, ok := err.(*errors.GarnixError); ok {
					problems = append(problems, gerr.Message)
				} else {
					problems = append(problems, err.Error())
				}
			}
		}
	}
	return problems
}
