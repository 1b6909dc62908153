// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package primesieve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "leb.io/primesieve"
	"leb.io/primesieve/internal/sievetest"
)

var tests = []struct {
	max    int
	primes []int
}{
	{-5, []int{}},
	{0, []int{}},
	{1, []int{}},
	{2, []int{2}},
	{3, []int{2, 3}},
	{4, []int{2, 3}},
	{10, []int{2, 3, 5, 7}},
	{25, []int{2, 3, 5, 7, 11, 13, 17, 19, 23}},
	{30, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	{49, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}},
}

func TestGeneratePrimes(t *testing.T) {
	for _, tt := range tests {
		got := GeneratePrimes(tt.max)
		require.NotNil(t, got, "GeneratePrimes(%d)", tt.max)
		assert.Equal(t, tt.primes, got, "GeneratePrimes(%d)", tt.max)
	}
}

func TestGeneratePrimesVerify(t *testing.T) {
	for max := -3; max <= 2000; max++ {
		if err := sievetest.Verify(GeneratePrimes(max), max); err != nil {
			t.Fatalf("max=%d: %v", max, err)
		}
	}
}

// pi(x) for a few powers of ten
var counts = []struct {
	max int
	n   int
}{
	{10, 4},
	{100, 25},
	{1000, 168},
	{10000, 1229},
	{100000, 9592},
	{1000000, 78498},
}

func TestCountPrimes(t *testing.T) {
	assert.Equal(t, 0, CountPrimes(-1))
	assert.Equal(t, 0, CountPrimes(1))
	assert.Equal(t, 1, CountPrimes(2))
	for _, c := range counts {
		assert.Equal(t, c.n, CountPrimes(c.max), "CountPrimes(%d)", c.max)
		primes := GeneratePrimes(c.max)
		assert.Len(t, primes, c.n, "GeneratePrimes(%d)", c.max)
		assert.Equal(t, cap(primes), len(primes), "GeneratePrimes(%d) capacity", c.max)
	}
}

func TestNoStateBetweenCalls(t *testing.T) {
	first := GeneratePrimes(10)
	assert.Equal(t, []int{2, 3, 5}, GeneratePrimes(5))
	assert.Equal(t, first, GeneratePrimes(10))

	// the caller owns the result
	first[0] = 4
	assert.Equal(t, []int{2, 3, 5, 7}, GeneratePrimes(10))
	assert.Empty(t, GeneratePrimes(1))
	assert.Equal(t, []int{2}, GeneratePrimes(2))
}

func TestHugeMaxPanics(t *testing.T) {
	const huge = 1 << 52
	var n int
	assert.PanicsWithValue(t, "primesieve: out of memory allocating 4503599627370497 marks for max 4503599627370496", func() {
		n = CountPrimes(huge)
	})
	assert.GreaterOrEqual(t, n, 0, "CountPrimes(%d)", huge)
	assert.Panics(t, func() { GeneratePrimes(huge) })
}

func benchmarkGeneratePrimes(max int, b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		GeneratePrimes(max)
	}
}

func BenchmarkGeneratePrimes1e3(b *testing.B) {
	benchmarkGeneratePrimes(1e3, b)
}

func BenchmarkGeneratePrimes1e6(b *testing.B) {
	benchmarkGeneratePrimes(1e6, b)
}

func BenchmarkCountPrimes1e6(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		CountPrimes(1e6)
	}
}
