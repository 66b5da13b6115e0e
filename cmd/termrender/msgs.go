package termrender

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render styled terminal output"
	MsgStripShort      = "Remove ANSI escape sequences"
	MsgWrapShort       = "Wrap text to a width, keeping styles intact"
	MsgLineShort       = "Print a padded, optionally colored line"
	MsgDividerShort    = "Print a horizontal rule"
	MsgBannerShort     = "Print text inside a border"
	MsgLinkShort       = "Print a terminal hyperlink"
	MsgTableShort      = "Render a table from a YAML or TOML file"
	MsgMarkupShort     = "Expand role tags such as <primary>text</primary>"
	MsgSpinShort       = "Show a spinner while logging progress"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/termrender/config.toml)"
	MsgFlagColor   = "Color level: auto, 0 (none), 1 (16), 2 (256) or 3 (truecolor)"
	MsgFlagWidth   = "Terminal width in columns (0 detects)"
	MsgFlagTheme   = "Color palette: default, classic or mono"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrNoInput     = "no input: pass text as arguments or on standard input"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrTableFormat = "cannot tell the table format of %q, use --format yaml or toml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/table-long.txt
	msgTableLongRaw string
	MsgTableLong    = strings.TrimSpace(msgTableLongRaw)

	//go:embed msgs/table-example.txt
	msgTableExampleRaw string
	MsgTableExample    = strings.TrimRight(msgTableExampleRaw, "\n")

	//go:embed msgs/spin-long.txt
	msgSpinLongRaw string
	MsgSpinLong    = strings.TrimSpace(msgSpinLongRaw)

	//go:embed msgs/spin-example.txt
	msgSpinExampleRaw string
	MsgSpinExample    = strings.TrimRight(msgSpinExampleRaw, "\n")
)
