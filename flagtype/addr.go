package flagtype

import (
	"flag"
	"fmt"
	"strings"

	"github.com/shixiong1996/nodeopts"
)

type addrValue struct {
	addr nodeopts.DebugAddress
}

// Addr returns a [flag.Value] that parses a debugger address given as
// "host:port" or a bare "port". The initial value is the default debugger
// port. Unlike the NODE_OPTIONS parsing path, the port is validated: it must
// be a base-10 non-negative integer.
//
// Retrieve the value as nodeopts.DebugAddress via [flag.Getter].
func Addr() flag.Value {
	return &addrValue{addr: nodeopts.DebugAddress{Port: nodeopts.DefaultDebugPort}}
}

func (v *addrValue) String() string {
	return v.addr.String()
}

func (v *addrValue) Set(s string) error {
	host, port, found := strings.Cut(s, ":")
	if !found {
		host, port = "", s
	}
	n, err := nodeopts.ParseNonNegativeInt(port)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", s, err)
	}
	v.addr = nodeopts.DebugAddress{Host: host, Port: n}
	return nil
}

func (v *addrValue) Get() any {
	return v.addr
}
