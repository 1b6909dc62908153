// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package primesieve

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/binary"
)

// WritePrimes writes the binary encoding of primes to w: a uvarint count followed by the values.
func WritePrimes(w io.Writer, primes []int) error {
	enc := binary.NewEncoder(w)
	if err := enc.Encode(primes); err != nil {
		return fmt.Errorf("primesieve: encode %d primes: %w", len(primes), err)
	}
	return nil
}

// ReadPrimes reads a list written by WritePrimes.
func ReadPrimes(r io.Reader) ([]int, error) {
	var primes []int
	dec := binary.NewDecoder(r)
	if err := dec.Decode(&primes); err != nil {
		return nil, fmt.Errorf("primesieve: decode primes: %w", err)
	}
	return primes, nil
}

// MarshalPrimes returns the encoding WritePrimes would write.
func MarshalPrimes(primes []int) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePrimes(&buf, primes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalPrimes is the inverse of MarshalPrimes.
func UnmarshalPrimes(b []byte) ([]int, error) {
	return ReadPrimes(bytes.NewReader(b))
}
