package flagtype

import (
	"flag"
	"strconv"

	"github.com/shixiong1996/nodeopts"
)

type nonNegativeIntValue struct {
	n int
}

// NonNegativeInt returns a [flag.Value] that accepts only base-10 non-negative
// integers. Malformed or negative input is rejected at parse time with an
// error naming the offending value.
//
// Retrieve the value as int via [flag.Getter].
func NonNegativeInt() flag.Value {
	return &nonNegativeIntValue{}
}

func (v *nonNegativeIntValue) String() string {
	return strconv.Itoa(v.n)
}

func (v *nonNegativeIntValue) Set(s string) error {
	n, err := nodeopts.ParseNonNegativeInt(s)
	if err != nil {
		return err
	}
	v.n = n
	return nil
}

func (v *nonNegativeIntValue) Get() any {
	return v.n
}
