package nodeopts

import "strings"

const (
	// NodeOptionsEnv is the environment variable holding interpreter flags.
	NodeOptionsEnv = "NODE_OPTIONS"

	// DefaultDebugPort is the conventional default debugger port, used
	// whenever no explicit inspect address is present.
	DefaultDebugPort = 9229

	// RestartExitCode is the reserved exit status a child process uses to ask
	// its parent to relaunch it. Callers compare a child's exit status against
	// it to decide whether to respawn.
	RestartExitCode = 77
)

// NodeOptionsArgs returns NODE_OPTIONS split into raw argument pieces. The
// value is split on literal spaces with each piece trimmed; no shell-style
// quoting or escaping is honored. Empty pieces are kept: the reattachment pass
// treats an empty positional as a token that cancels a pending flag without
// feeding it.
func NodeOptionsArgs(src *Source) []string {
	raw := src.getenv(NodeOptionsEnv)
	if raw == "" {
		return nil
	}
	args := strings.Split(raw, " ")
	for i, arg := range args {
		args[i] = strings.TrimSpace(arg)
	}
	return args
}

// ParseNodeOptions parses the NODE_OPTIONS environment variable into an
// [Options] mapping. An unset or empty variable yields an empty mapping.
func ParseNodeOptions(src *Source) *Options {
	return ParseOptions(NodeOptionsArgs(src))
}

// ParseNodeOptionsWithoutInspect parses NODE_OPTIONS and strips every spelling
// of the debugger-attachment flag, leaving all other flags intact. The result
// is what a parent hands a relaunched child that must not inherit an inspect
// listener.
func ParseNodeOptionsWithoutInspect(src *Source) *Options {
	opts := ParseNodeOptions(src)
	for _, name := range inspectFlagNames {
		opts.Delete(name)
	}
	return opts
}
