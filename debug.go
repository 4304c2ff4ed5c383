package nodeopts

import (
	"strconv"
	"strings"
)

// inspectFlagNames are the accepted debug-flag spellings, in lookup priority
// order.
var inspectFlagNames = []string{"inspect", "inspect-brk", "inspect_brk"}

// maxOldSpaceSizeFlagNames are the accepted heap-size-limit flag spellings.
var maxOldSpaceSizeFlagNames = []string{"max-old-space-size", "max_old_space_size"}

// DebugAddress is a debugger-attach endpoint. Host is empty when the source
// address named only a port.
type DebugAddress struct {
	Host string
	Port int
}

// String formats the address as "host:port", or just "port" when Host is
// unset.
func (a DebugAddress) String() string {
	if a.Host != "" {
		return a.Host + ":" + strconv.Itoa(a.Port)
	}
	return strconv.Itoa(a.Port)
}

// ParseDebugAddress returns the debugger address requested via NODE_OPTIONS.
// The inspect flag is looked up under its bare, hyphenated, and underscored
// break spellings; the first spelling present wins. When no spelling is
// present, or the winning flag carries no value, the default port applies. A
// value containing ":" is split once on the first ":" into host and port.
//
// The port is parsed base-10 without validation: a malformed port silently
// yields the zero value rather than an error. Use [ParseNonNegativeInt] (or
// flagtype.Addr) where strictness matters.
func ParseDebugAddress(src *Source) DebugAddress {
	opts := ParseNodeOptions(src)
	for _, name := range inspectFlagNames {
		if !opts.Has(name) {
			continue
		}
		v, ok := opts.Value(name)
		if !ok {
			// Present as a bare flag: no address was given.
			break
		}
		if host, port, found := strings.Cut(v, ":"); found {
			n, _ := strconv.Atoi(port)
			return DebugAddress{Host: host, Port: n}
		}
		n, _ := strconv.Atoi(v)
		return DebugAddress{Port: n}
	}
	return DebugAddress{Port: DefaultDebugPort}
}

// Debug kinds reported by [DebugKind].
const (
	DebugKindInspect    = "inspect"
	DebugKindInspectBrk = "inspect-brk"
)

// DebugKind reports which debugger mode the process is running under, looking
// at the execution arguments and NODE_OPTIONS together. The plain inspect flag
// wins over the break-on-start variants when both are present. Returns "" when
// no debug flag is active.
func DebugKind(src *Source) string {
	args := append(append([]string{}, src.execArgs()...), NodeOptionsArgs(src)...)
	opts := ParseOptions(args)
	if opts.Has("inspect") {
		return DebugKindInspect
	}
	if opts.Has("inspect-brk") || opts.Has("inspect_brk") {
		return DebugKindInspectBrk
	}
	return ""
}

// MaxOldSpaceSizeMB extracts the heap-size limit requested via NODE_OPTIONS,
// in megabytes. ok is false when no spelling of the flag carries a value,
// including when NODE_OPTIONS is unset or empty. Like the inspect port, the
// value is parsed base-10 without validation.
func MaxOldSpaceSizeMB(src *Source) (size int, ok bool) {
	opts := ParseNodeOptions(src)
	for _, name := range maxOldSpaceSizeFlagNames {
		if v, found := opts.Value(name); found && v != "" {
			n, _ := strconv.Atoi(v)
			return n, true
		}
	}
	return 0, false
}
