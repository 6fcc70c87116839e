package garnix

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Select and build flake attributes per git branch"
	MsgRunShort        = "Build the attributes selected for the branch"
	MsgAttrsShort      = "List the buildable flake attributes"
	MsgConfigShort     = "Show the normalized garnix.yaml rules"
	MsgSchemaShort     = "Print the JSON schema of garnix.yaml"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagDir      = "Run as if garnix was started in this directory"
	MsgFlagAsBranch = "Select attributes as if this branch was checked out"
	MsgFlagDryRun   = "Print the build command without running it"
	MsgFlagCheck    = "Validate every include and exclude pattern"
	MsgFlagBranch   = "Mark the rules applying to this branch"

	// Status messages
	MsgVersionFormat = "garnix version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrInvalidConfig = "garnix.yaml has %d invalid pattern(s)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/attrs-long.txt
	msgAttrsLongRaw string
	MsgAttrsLong    = strings.TrimSpace(msgAttrsLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/config-example.txt
	msgConfigExampleRaw string
	MsgConfigExample    = strings.TrimRight(msgConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
