package splines

import (
	"errors"
	"math/bits"
)

// MaxFactorial is the largest n for which n! fits in a uint64.
const MaxFactorial = 20

// MaxDegree is the largest Bernstein degree supported by [EvalBernstein].
// Every binomial coefficient C(n, k) with n ≤ MaxDegree fits in a uint64;
// C(68, 34) does not.
const MaxDegree = 67

var (
	ErrNegative = errors.New("negative argument")
	ErrOverflow = errors.New("result overflows uint64")
)

// Factorial returns n!.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > MaxFactorial {
		return 0, ErrOverflow
	}
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}
	return f, nil
}

// Binomial returns the binomial coefficient C(n, k) = n! / (k! (n−k)!).
//
// The coefficient is built up multiplicatively as C(n, i+1) = C(n, i)·(n−i)/(i+1),
// with 128-bit intermediate products, so it is exact whenever the result
// fits in a uint64, and it avoids the factorials overflowing long before the
// coefficient does. It returns 0 for k < 0 or k > n.
func Binomial(n, k int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if k < 0 || k > n {
		return 0, nil
	}
	// Symmetry keeps the loop short and the intermediates small.
	k = min(k, n-k)
	c := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(c, uint64(n-i))
		d := uint64(i + 1)
		if hi >= d {
			return 0, ErrOverflow
		}
		// The division is exact: C(n, i)·(n−i) is always divisible by i+1.
		c, _ = bits.Div64(hi, lo, d)
	}
	return c, nil
}

// binomialRow returns C(n, 0) … C(n, n) as float64.
func binomialRow(n int) ([]float64, error) {
	row := make([]float64, n+1)
	for i := range row {
		c, err := Binomial(n, i)
		if err != nil {
			return nil, err
		}
		row[i] = float64(c)
	}
	return row, nil
}
