// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package primesieve computes all the primes up to a bound with the Sieve of Eratosthenes.
// The marking structure is a bitset allocated fresh for every call and thrown away once the
// primes have been collected, so calls never see each other's marks.
// Also provided are a fingerprint of a list of primes and a compact binary encoding of one.
package primesieve

import (
	"fmt"
	"math"

	"github.com/willf/bitset"
)

// GeneratePrimes returns every prime <= maxValue in ascending order.
// Any maxValue < 2 yields an empty slice, there being no primes below 2.
// The returned slice belongs to the caller.
func GeneratePrimes(maxValue int) []int {
	if maxValue < 2 {
		return []int{}
	}
	crossed := initialize(maxValue)
	crossOutMultiples(crossed)
	return collect(crossed)
}

// CountPrimes returns the number of primes <= maxValue, same as len(GeneratePrimes(maxValue))
// but without building the list.
func CountPrimes(maxValue int) int {
	if maxValue < 2 {
		return 0
	}
	crossed := initialize(maxValue)
	crossOutMultiples(crossed)
	return uncrossed(crossed)
}

// bit i set means i has been crossed out as composite
func initialize(maxValue int) *bitset.BitSet {
	length := uint(maxValue) + 1
	crossed := bitset.New(length)
	// bitset.New recovers from a failed allocation and hands back an empty set
	if crossed.Len() != length {
		panic(fmt.Sprintf("primesieve: out of memory allocating %d marks for max %d", length, maxValue))
	}
	return crossed
}

// We cross out all multiples of p, where p is prime. Every crossed out multiple therefore
// has p and some q as factors. Once p > sqrt of the length of the set q would have to be 1,
// so that is the iteration limit.
func maxPrimeFactor(length uint) uint {
	return uint(math.Sqrt(float64(length))) + 1
}

func crossOutMultiples(crossed *bitset.BitSet) {
	last := crossed.Len() - 1
	limit := maxPrimeFactor(crossed.Len())
	if limit > last {
		limit = last
	}
	for i := uint(2); i <= limit; i++ {
		if notCrossed(crossed, i) {
			crossOutMultiplesOf(crossed, i, last)
		}
	}
}

func crossOutMultiplesOf(crossed *bitset.BitSet, i, last uint) {
	for multiple := 2 * i; multiple <= last; multiple += i {
		crossed.Set(multiple)
		// next step would wrap for a bound near the top of the range
		if multiple > last-i {
			break
		}
	}
}

func notCrossed(crossed *bitset.BitSet, i uint) bool {
	return !crossed.Test(i)
}

// 0 and 1 are never crossed but are not primes either
func uncrossed(crossed *bitset.BitSet) int {
	return int(crossed.Len()-crossed.Count()) - 2
}

func collect(crossed *bitset.BitSet) []int {
	primes := make([]int, 0, uncrossed(crossed))
	for i := uint(2); i < crossed.Len(); i++ {
		if notCrossed(crossed, i) {
			primes = append(primes, int(i))
		}
	}
	return primes
}
