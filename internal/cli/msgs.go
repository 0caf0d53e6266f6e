package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Enforce declared end states on a project tree"
	MsgRunShort        = "Run one enforcement pass"
	MsgCheckShort      = "Report what a pass would change (run --dry-run)"
	MsgCheckLong       = "Check is run --dry-run: it evaluates every unit and reports pending actions without changing anything. It exits with status 2 when some action is not applied."
	MsgListShort       = "List units, whether they apply and their actions"
	MsgListLong        = "List discovers and validates every unit, evaluates its triggers against the target and shows the work it would check, without checking it."
	MsgValidateShort   = "Validate unit files without evaluating them"
	MsgValidateLong    = "Validate discovers every unit and checks it against the unit schema. Every violation of every unit is reported."
	MsgWatchShort      = "Re-run passes when units change"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgUnitsValid = "%d units valid"

	// Version output
	MsgVersionFormat = "dictator version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgLogFormat     = "Log:    %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDictator  = "Dictator root holding the units folder (default $DICTATOR_ROOT or current directory)"
	MsgFlagTarget    = "Target root the units are enforced on (default current directory)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagConfig    = "User config file (default $XDG_CONFIG_HOME/dictator/config.toml)"
	MsgFlagDryRun    = "Report pending actions without changing anything"
	MsgFlagKeepGoing = "Keep applying after a failed action"
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

	//go:embed msgs/watch-long.txt
	msgWatchLongRaw string
	MsgWatchLong    = strings.TrimSpace(msgWatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
