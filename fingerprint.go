// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package primesieve

import (
	"errors"
	"fmt"

	"github.com/dataence/cityhash"
	"github.com/spaolacci/murmur3"
	"leb.io/aeshash"
)

const (
	m3 = iota + 1
	city
	aes
)

// ErrUnknownHash is returned by Fingerprint when asked for a hash function it doesn't know.
var ErrUnknownHash = errors.New("primesieve: unknown hash function")

// HashNames lists the names Fingerprint accepts. The empty name selects "m3".
var HashNames = []string{"m3", "city", "aes"}

func setHash(hashName string) (int, error) {
	switch hashName {
	case "", "m3":
		return m3, nil
	case "city":
		return city, nil
	case "aes":
		return aes, nil
	default:
		return 0, fmt.Errorf("%q: %w", hashName, ErrUnknownHash)
	}
}

// Fingerprint hashes a list of primes so two runs can be compared without shipping the list.
// Each value is serialized as 8 little endian bytes before hashing.
func Fingerprint(primes []int, hashName string) (uint64, error) {
	h, err := setHash(hashName)
	if err != nil {
		return 0, err
	}
	b := make([]byte, 8*len(primes))
	for k, p := range primes {
		ui64tob(b[k*8:], uint64(p))
	}
	switch h {
	case city:
		return cityhash.CityHash64(b, uint32(len(b))), nil
	case aes:
		return aeshash.Hash(b, 0), nil
	default:
		return murmur3.Sum64(b), nil
	}
}

// can be inlined
func ui64tob(b []byte, v uint64) {
	b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24), byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56)
}
