package greeter

import (
	"errors"
	"math"
)

// ErrOverflow is returned by AddChecked when the sum does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// Add returns a + b. Overflow wraps around using two's complement, so
// Add(math.MaxInt, 1) == math.MinInt.
func Add(a, b int) int {
	return a + b
}

// AddChecked returns a + b, or ErrOverflow if the result would wrap.
func AddChecked(a, b int) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, ErrOverflow
	}
	return a + b, nil
}
