package nodeopts

import "strings"

// Kind classifies a single argument token.
type Kind uint8

const (
	// KindOption is a dash-prefixed flag, optionally carrying an inline =value.
	KindOption Kind = iota
	// KindPositional is a bare value not attached to any flag.
	KindPositional
	// KindTerminator is a standalone "--". Everything after it is positional.
	KindTerminator
)

// Token is one classified argument from a flag string.
type Token struct {
	Kind Kind

	// Name is the option name with leading dashes stripped. Empty for
	// positionals and terminators.
	Name string

	// Value is the inline value for --name=value options, or the literal
	// argument for positionals.
	Value string

	// HasValue reports whether an option carried an inline "=" value, even an
	// empty one. A bare --name has HasValue false.
	HasValue bool

	// Raw is the argument as given.
	Raw string
}

// Scan classifies raw arguments into tokens without interpreting flag names. It
// is permissive: unknown flags are accepted and missing values never error. A
// standalone "-" is positional, matching the convention that a lone dash names
// stdin.
func Scan(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	terminated := false
	for _, arg := range args {
		switch {
		case terminated:
			tokens = append(tokens, Token{Kind: KindPositional, Value: arg, Raw: arg})
		case arg == "--":
			terminated = true
			tokens = append(tokens, Token{Kind: KindTerminator, Raw: arg})
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			tok := Token{Kind: KindOption, Name: strings.TrimLeft(arg, "-"), Raw: arg}
			if name, value, ok := strings.Cut(tok.Name, "="); ok {
				tok.Name = name
				tok.Value = value
				tok.HasValue = true
			}
			tokens = append(tokens, tok)
		default:
			tokens = append(tokens, Token{Kind: KindPositional, Value: arg, Raw: arg})
		}
	}
	return tokens
}
