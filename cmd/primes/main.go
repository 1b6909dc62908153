// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// This program prints the primes up to a bound.
// It can also just count them, fingerprint them, write them out in binary,
// and check them against trial division.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/klauspost/cpuid/v2"
	"leb.io/hrff"
	"leb.io/primesieve"
	"leb.io/primesieve/internal/sievetest"
	"leb.io/primesieve/internal/siginfo"
)

var count = flag.Bool("c", false, "print only the number of primes")
var quiet = flag.Bool("q", false, "don't print the primes")
var fp = flag.String("fp", "", "print a fingerprint of the primes using hash {m3, city, aes}")
var out = flag.String("o", "", "write the binary encoding of the primes to this file")
var check = flag.Bool("check", false, "check the primes by trial division")
var verbose = flag.Bool("v", false, "verbose")

var cp = flag.String("cp", "", "write cpu profile to file")

// what we are doing right now, printed on ^T
var phase atomic.Value

func setPhase(s string) {
	phase.Store(s)
}

func hi(v int64, u string) hrff.Int64 {
	return hrff.Int64{V: v, U: u}
}

func hu(v uint64, u string) hrff.Int64 {
	return hrff.Int64{V: int64(v), U: u}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: primes [flags] maxValue\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func writeFile(name string, primes []int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := primesieve.WritePrimes(w, primes); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printPrimes(primes []int) error {
	w := bufio.NewWriter(os.Stdout)
	for _, p := range primes {
		fmt.Fprintf(w, "%d\n", p)
	}
	return w.Flush()
}

// startCPUProfile writes a cpu profile to name until stop is called.
func startCPUProfile(name string) (stop func(), err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("cpu profile %s: %w", name, err)
	}
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.Printf("primes: %v", err)
		}
	}, nil
}

func run(maxValue int) error {
	var msb, msa runtime.MemStats

	if *verbose {
		fmt.Printf("cpu: %s, cores=%d, hz=%h\n", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, hi(cpuid.CPU.Hz, "Hz"))
	}

	setPhase(fmt.Sprintf("sieving to %d", maxValue))
	runtime.ReadMemStats(&msb)
	start := time.Now()
	if *count && *fp == "" && *out == "" && !*check {
		n := primesieve.CountPrimes(maxValue)
		fmt.Printf("%d\n", n)
		if *verbose {
			fmt.Printf("sieve: %v\n", time.Since(start))
		}
		return nil
	}
	primes := primesieve.GeneratePrimes(maxValue)
	elapsed := time.Since(start)
	runtime.ReadMemStats(&msa)

	if *verbose {
		rate := hrff.Float64{float64(maxValue) * (float64(time.Second) / float64(elapsed+1)), "n/sec"}
		fmt.Printf("sieve: %v %h, primes=%h, alloc=%h\n", elapsed, rate,
			hi(int64(len(primes)), ""), hu(msa.TotalAlloc-msb.TotalAlloc, "B"))
	}

	if *check {
		setPhase("checking")
		if err := sievetest.Verify(primes, maxValue); err != nil {
			return err
		}
		if *verbose {
			fmt.Printf("check: ok\n")
		}
	}

	if *out != "" {
		setPhase("writing " + *out)
		if err := writeFile(*out, primes); err != nil {
			return err
		}
	}

	if *fp != "" {
		setPhase("fingerprinting")
		h, err := primesieve.Fingerprint(primes, *fp)
		if err != nil {
			return err
		}
		fmt.Printf("fingerprint %s: %#016x\n", *fp, h)
	}

	switch {
	case *count:
		fmt.Printf("%d\n", len(primes))
	case !*quiet:
		setPhase("printing")
		if err := printPrimes(primes); err != nil {
			return err
		}
	}
	setPhase("done")
	return nil
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}
	maxValue, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "primes: bad maxValue %q\n", flag.Arg(0))
		usage()
	}

	stopProfile := func() {}
	if *cp != "" {
		stopProfile, err = startCPUProfile(*cp)
		if err != nil {
			log.Fatal(err)
		}
	}

	setPhase("starting")
	stop := siginfo.SetHandler(func() {
		log.Printf("primes: %v", phase.Load())
	})

	err = run(maxValue)
	stop()
	// before log.Fatal, which skips deferred calls
	stopProfile()
	if err != nil {
		log.Fatal(err)
	}
}
