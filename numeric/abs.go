package numeric

import "github.com/go-sweep/sweep/types"

// Abs computes the absolute value of a signed number.
func Abs[T types.SignedNumber](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
