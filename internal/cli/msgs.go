package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Split phone numbers into country code, NDC and groups"
	MsgSplitShort      = "Decompose numbers into their parts"
	MsgFormatShort     = "Format numbers for display"
	MsgNormalizeShort  = "Print numbers as country code plus national digits"
	MsgPlausibleShort  = "Report whether numbers decompose cleanly"
	MsgCheckShort      = "Compare a decomposition with libphonenumber"
	MsgBatchShort      = "Decompose a list of numbers concurrently"
	MsgCountriesShort  = "List the countries with rules"
	MsgExplainShort    = "Show how a number was decomposed"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Error messages
	MsgErrLoadConfig      = "failed to load configuration: %w"
	MsgErrLoadDefinitions = "failed to load definitions: %w"
	MsgErrReadInput       = "failed to read numbers: %w"
	MsgErrFailures        = "%d of %d numbers failed"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (TOML or YAML)"
	MsgFlagCountry     = "Calling code for national input (e.g. 41)"
	MsgFlagOutput      = "Output encoding: text, json, yaml or xml"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagStyle       = "Format style: international, national, local or e164"
	MsgFlagSpaces      = "Separator between NDC and groups"
	MsgFlagLocalSpaces = "Separator between groups in local style"
	MsgFlagParentheses = "Wrap the national prefix in parentheses"
	MsgFlagWorkers     = "Concurrent decompositions, 0 uses one per CPU"
	MsgFlagStats       = "Print outcome counts after the results"
	MsgFlagReserved    = "Include reserved calling codes"
	MsgFlagFormat      = "Print the formatted number with each result"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/split-example.txt
	msgSplitExampleRaw string
	MsgSplitExample    = strings.TrimRight(msgSplitExampleRaw, "\n")

	//go:embed msgs/format-example.txt
	msgFormatExampleRaw string
	MsgFormatExample    = strings.TrimRight(msgFormatExampleRaw, "\n")

	//go:embed msgs/batch-long.txt
	msgBatchLongRaw string
	MsgBatchLong    = strings.TrimSpace(msgBatchLongRaw)

	//go:embed msgs/batch-example.txt
	msgBatchExampleRaw string
	MsgBatchExample    = strings.TrimRight(msgBatchExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
