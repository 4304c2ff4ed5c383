package nodeopts

import "strings"

// Options is a mapping from flag name to value that remembers the order in
// which names first appeared. A flag given without a value is recorded as a
// boolean presence; a flag given a value carries a string. Duplicate flags keep
// their original position and the last value wins.
type Options struct {
	names  []string
	values map[string]optionValue
}

type optionValue struct {
	str      string
	hasValue bool
}

// NewOptions returns an empty Options.
func NewOptions() *Options {
	return &Options{values: make(map[string]optionValue)}
}

func (o *Options) set(name string, v optionValue) {
	if o.values == nil {
		o.values = make(map[string]optionValue)
	}
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = v
}

// SetBool records name as present with no value.
func (o *Options) SetBool(name string) {
	o.set(name, optionValue{})
}

// SetString records name with an explicit string value.
func (o *Options) SetString(name, value string) {
	o.set(name, optionValue{str: value, hasValue: true})
}

// Has reports whether name is present, regardless of whether it carries a
// value.
func (o *Options) Has(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[name]
	return ok
}

// Value returns the string value recorded for name. ok is false when the flag
// is absent or is a boolean presence without a value.
func (o *Options) Value(name string) (value string, ok bool) {
	if o == nil {
		return "", false
	}
	v, ok := o.values[name]
	if !ok || !v.hasValue {
		return "", false
	}
	return v.str, true
}

// Delete removes name and reports whether it was present.
func (o *Options) Delete(name string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.values[name]; !ok {
		return false
	}
	delete(o.values, name)
	for i, n := range o.names {
		if n == name {
			o.names = append(o.names[:i], o.names[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of recorded flags.
func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.names)
}

// Names returns the flag names in first-appearance order.
func (o *Options) Names() []string {
	if o == nil {
		return nil
	}
	names := make([]string, len(o.names))
	copy(names, o.names)
	return names
}

// String serializes the options back to a flag string: boolean flags as
// --name, string-valued flags as --name=value. Flags whose value is the empty
// string are omitted entirely. Entries are joined with single spaces in
// first-appearance order; an empty mapping yields "".
func (o *Options) String() string {
	if o == nil {
		return ""
	}
	parts := make([]string, 0, len(o.names))
	for _, name := range o.names {
		v := o.values[name]
		switch {
		case !v.hasValue:
			parts = append(parts, "--"+name)
		case v.str != "":
			parts = append(parts, "--"+name+"="+v.str)
		}
	}
	return strings.Join(parts, " ")
}

// ParseOptions runs a permissive parse over args and returns the resulting
// mapping. The scanner does not know which flags expect values, so "--flag
// value" initially records flag as a boolean presence with the value stranded
// on a separate positional token. A second pass walks the token stream and
// reattaches such orphaned values: at most one valueless option is held
// pending, a following non-empty positional supplies its value, and any other
// token discards the pending flag (it stays boolean) before being considered
// as the next pending candidate itself. A "--" terminator stops reattachment
// for the rest of the stream.
func ParseOptions(args []string) *Options {
	tokens := Scan(args)
	opts := NewOptions()
	for _, tok := range tokens {
		if tok.Kind != KindOption {
			continue
		}
		if tok.HasValue {
			opts.SetString(tok.Name, tok.Value)
		} else {
			opts.SetBool(tok.Name)
		}
	}

	var pending *Token
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind == KindTerminator {
			break
		}
		if pending != nil {
			if tok.Kind == KindPositional && tok.Value != "" {
				opts.SetString(pending.Name, tok.Value)
				pending = nil
				continue
			}
			pending = nil
		}
		if tok.Kind == KindOption && !tok.HasValue {
			pending = tok
		}
	}
	return opts
}
