package surfutils

import (
	"github.com/cockroachdb/errors"
)

// Number covers the integer kinds that surface dimensions, pitches and alignments come in
type Number interface {
	~int | ~int32 | ~uint | ~uint32
}

// CheckPow2 fails with PowerOfTwoError, naming the offending setting, unless number is a positive
// power of two
func CheckPow2[T Number](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return errors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to a multiple of alignment, which must be a power of two
func AlignUp[T Number](value T, alignment T) T {
	return (value + alignment - 1) &^ (alignment - 1)
}

// DivUp divides value by divisor, rounding up. Subsampled chroma planes use it to cover odd luma
// dimensions.
func DivUp[T Number](value T, divisor T) T {
	return (value + divisor - 1) / divisor
}
