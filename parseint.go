package nodeopts

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidArgument reports a value that failed strict validation. A
// command-line layer typically surfaces it to the user as a usage error.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseNonNegativeInt parses a base-10 non-negative integer. Unlike the
// environment parsing paths, which tolerate malformed numbers, it rejects
// anything that is not a finite non-negative integer with an error wrapping
// [ErrInvalidArgument] and naming the offending value.
func ParseNonNegativeInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a non-negative number", ErrInvalidArgument, value)
	}
	return n, nil
}
