// Package flagtype provides common [flag.Value] implementations for use with
// [flag.FlagSet.Var].
//
// All types implement [flag.Getter] so parsed values can be retrieved from a
// flag set after parsing.
//
// The following types are available:
//   - [NonNegativeInt] - strict base-10 non-negative integer, retrieved as int
//   - [Addr] - debugger address in "host:port" or "port" form, retrieved as
//     nodeopts.DebugAddress
//
// Example registration:
//
//	fs.Var(flagtype.NonNegativeInt(), "port", "port to listen on")
//	fs.Var(flagtype.Addr(), "inspect", "debugger address")
//
// Example retrieval after parsing:
//
//	port := fs.Lookup("port").Value.(flag.Getter).Get().(int)
package flagtype
