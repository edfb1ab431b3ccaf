package splines

import (
	"errors"
	"testing"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		got, err := Factorial(tt.n)
		if err != nil {
			t.Fatalf("Factorial(%d): unexpected error: %s", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if _, err := Factorial(MaxFactorial + 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("got error %v, want %v", err, ErrOverflow)
	}
	if _, err := Factorial(-1); !errors.Is(err, ErrNegative) {
		t.Errorf("got error %v, want %v", err, ErrNegative)
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want uint64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 2, 10},
		{5, 5, 1},
		{10, 3, 120},
		{52, 5, 2598960},
		{5, -1, 0},
		{5, 6, 0},
		{67, 33, 14226520737620288370},
	}
	for _, tt := range tests {
		got, err := Binomial(tt.n, tt.k)
		if err != nil {
			t.Fatalf("Binomial(%d, %d): unexpected error: %s", tt.n, tt.k, err)
		}
		if got != tt.want {
			t.Errorf("Binomial(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}

	if _, err := Binomial(MaxDegree+1, (MaxDegree+1)/2); !errors.Is(err, ErrOverflow) {
		t.Errorf("got error %v, want %v", err, ErrOverflow)
	}
	if _, err := Binomial(-1, 0); !errors.Is(err, ErrNegative) {
		t.Errorf("got error %v, want %v", err, ErrNegative)
	}
}

func TestBinomialIdentities(t *testing.T) {
	for n := 0; n <= MaxDegree; n++ {
		var sum uint64
		for k := 0; k <= n; k++ {
			c, err := Binomial(n, k)
			if err != nil {
				t.Fatalf("Binomial(%d, %d): unexpected error: %s", n, k, err)
			}
			sym, _ := Binomial(n, n-k)
			if c != sym {
				t.Errorf("C(%d, %d) = %d, but C(%d, %d) = %d", n, k, c, n, n-k, sym)
			}
			if n > 0 && k > 0 && k < n {
				a, _ := Binomial(n-1, k-1)
				b, _ := Binomial(n-1, k)
				if a+b != c {
					t.Errorf("C(%d, %d) = %d, want C(%d, %d) + C(%d, %d) = %d", n, k, c, n-1, k-1, n-1, k, a+b)
				}
			}
			sum += c
		}
		if n < 64 && sum != 1<<n {
			t.Errorf("row %d sums to %d, want %d", n, sum, uint64(1)<<n)
		}
	}
}

func TestBinomialMatchesFactorials(t *testing.T) {
	for n := 0; n <= MaxFactorial; n++ {
		fn, _ := Factorial(n)
		for k := 0; k <= n; k++ {
			fk, _ := Factorial(k)
			fnk, _ := Factorial(n - k)
			want := fn / fk / fnk
			if got, _ := Binomial(n, k); got != want {
				t.Errorf("Binomial(%d, %d) = %d, want %d", n, k, got, want)
			}
		}
	}
}
