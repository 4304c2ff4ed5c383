package nodeopts

import "os"

// Source supplies the process state the environment-reading functions consume.
// A nil *Source (or nil fields) reads the live process: [os.Getenv] for
// environment lookups and os.Args[1:] for execution arguments. Injecting a
// Source keeps every function in this package pure and independently testable.
type Source struct {
	// Getenv looks up an environment variable. Nil falls back to os.Getenv.
	Getenv func(key string) string

	// ExecArgs are the process's already-active execution arguments, consulted
	// by [DebugKind] alongside NODE_OPTIONS. Nil falls back to os.Args[1:].
	ExecArgs []string
}

func (s *Source) getenv(key string) string {
	if s == nil || s.Getenv == nil {
		return os.Getenv(key)
	}
	return s.Getenv(key)
}

func (s *Source) execArgs() []string {
	if s == nil || s.ExecArgs == nil {
		if len(os.Args) > 1 {
			return os.Args[1:]
		}
		return nil
	}
	return s.ExecArgs
}
