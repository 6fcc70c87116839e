package garnix

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/garnix/internal/version"
	"github.com/arthur-debert/garnix/pkg/cobrax/topics"
	"github.com/arthur-debert/garnix/pkg/commands"
	"github.com/arthur-debert/garnix/pkg/config"
	"github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/executor"
	"github.com/arthur-debert/garnix/pkg/logging"
	"github.com/arthur-debert/garnix/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// Options replace the collaborators of the command tree, mostly for tests
type Options struct {
	// Runner spawns git and nix, an executor streaming to the command
	// output when nil
	Runner executor.Runner
	// Settings override the GARNIX_* environment when set
	Settings *config.Settings
}

// reportedError is an error the command already rendered
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported tells whether err was already shown to the user
func Reported(err error) bool {
	_, ok := err.(*reportedError)
	return ok
}

type app struct {
	opts      Options
	verbosity int
	format    string
	dir       string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with the given collaborators
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	initTemplateFormatting()

	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:     "garnix",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: a.verbosity,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			_, err := ui.ParseFormat(a.format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVarP(&a.dir, "dir", "C", "", MsgFlagDir)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("dir")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// The topics help command replaces cobra's
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(a.newRunCmd())
	rootCmd.AddCommand(a.newAttrsCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(a.newSchemaCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	helpTopics, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(!isTerminal()),
		}
		if err := topics.InitializeWithOptions(rootCmd, helpTopics, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			c.GroupID = "misc"
		}
	}

	return rootCmd
}

// renderer builds the output renderer for the --format flag
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func (a *app) jsonOutput() bool {
	format, err := ui.ParseFormat(a.format)
	return err == nil && format == ui.FormatJSON
}

// workspace returns the options shared by every command. Build output goes
// to stderr when stdout carries JSON.
func (a *app) workspace(cmd *cobra.Command) commands.WorkspaceOptions {
	runner := a.opts.Runner
	if runner == nil {
		var stdout io.Writer = cmd.OutOrStdout()
		if a.jsonOutput() {
			stdout = cmd.ErrOrStderr()
		}
		runner = executor.New(executor.Options{
			Stdout: stdout,
			Stderr: cmd.ErrOrStderr(),
		})
	}
	return commands.WorkspaceOptions{
		Dir:      a.dir,
		Runner:   runner,
		Settings: a.opts.Settings,
	}
}

func (a *app) newRunCmd() *cobra.Command {
	var (
		asBranch string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			plan, err := commands.PrepareRun(cmd.Context(), commands.RunOptions{
				WorkspaceOptions: a.workspace(cmd),
				AsBranch:         asBranch,
				DryRun:           dryRun,
			})
			if err != nil {
				return err
			}

			// Terminal output shows the plan before the build output
			if !a.jsonOutput() {
				if err := renderer.RenderResult(plan.Result); err != nil {
					return err
				}
			}

			buildErr := commands.ExecuteRun(cmd.Context(), plan)

			if a.jsonOutput() {
				err = renderer.RenderResult(plan.Result)
			} else {
				err = renderer.RenderResult(plan.Result.Build)
			}
			if buildErr != nil {
				return &reportedError{err: buildErr}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&asBranch, "as-branch", "", MsgFlagAsBranch)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}

func (a *app) newAttrsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "attrs",
		Short:   MsgAttrsShort,
		Long:    MsgAttrsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ListAttributes(cmd.Context(), commands.ListAttributesOptions{
				WorkspaceOptions: a.workspace(cmd),
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func (a *app) newConfigCmd() *cobra.Command {
	var (
		branch string
		check  bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			result, err := commands.ShowConfig(cmd.Context(), commands.ShowConfigOptions{
				WorkspaceOptions: a.workspace(cmd),
				Branch:           branch,
				Check:            check,
			})
			if err != nil {
				return err
			}
			if err := renderer.RenderResult(result); err != nil {
				return err
			}

			if !result.Valid() {
				return &reportedError{err: errors.Newf(errors.ErrConfigValid, MsgErrInvalidConfig, len(result.Problems)).
					WithDetail("problems", result.Problems)}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", MsgFlagBranch)
	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)

	return cmd
}

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		Short:   MsgSchemaShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(config.Schema(), "", "  ")
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode schema")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonOutput() {
				renderer, err := a.renderer(cmd)
				if err != nil {
					return err
				}
				return renderer.RenderResult(versionInfo{
					Version: version.Version,
					Commit:  version.Commit,
					Date:    version.Date,
				})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// RenderError prints err on stderr in the style matching the output
func RenderError(err error) {
	renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
	if rerr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	_ = renderer.RenderError(err)
}
