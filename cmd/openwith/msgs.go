package openwith

// User-facing messages for the CLI
const (
	MsgRootShort = "Open files in external programs by pattern"
	MsgRootLong  = `openwith associates file-name patterns with external helper programs and
launches the matching program, detached, when a file is opened. The library
is meant to be embedded as an editor hook; this command drives the same
dispatcher from the terminal.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/openwith/openwith.toml)"

	MsgOpenShort = "Dispatch files to their associated programs"
	MsgOpenLong  = `Run each file through the dispatcher. A file whose path matches an
association is opened in the associated external program; files with no
match are reported and left alone.`

	MsgResolveShort = "Show which association a file resolves to"
	MsgResolveLong  = `Resolve each path against the association table without launching
anything, and print the program and argument list that would run.`

	MsgGenConfigShort = "Print a starter configuration file"
	MsgGenConfigLong  = `Print the default configuration with every value commented out, ready to
be saved as $XDG_CONFIG_HOME/openwith/openwith.toml and edited.`
)
