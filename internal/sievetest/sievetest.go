// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// small package that checks the output of a sieve against trial division
package sievetest

import "fmt"

// IsPrime checks n by trial division over 6k±1.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Verify checks that primes holds exactly the primes <= maxValue, ascending, each once.
// The error names the first violation found.
func Verify(primes []int, maxValue int) error {
	prev := 1
	for k, p := range primes {
		if p <= prev {
			return fmt.Errorf("Verify: primes[%d]=%d not above %d", k, p, prev)
		}
		if p > maxValue {
			return fmt.Errorf("Verify: primes[%d]=%d above max %d", k, p, maxValue)
		}
		if !IsPrime(p) {
			return fmt.Errorf("Verify: primes[%d]=%d is composite", k, p)
		}
		for q := prev + 1; q < p; q++ {
			if IsPrime(q) {
				return fmt.Errorf("Verify: prime %d missing before primes[%d]=%d", q, k, p)
			}
		}
		prev = p
	}
	for q := prev + 1; q > prev && q <= maxValue; q++ {
		if IsPrime(q) {
			return fmt.Errorf("Verify: prime %d missing after %d", q, prev)
		}
	}
	return nil
}
