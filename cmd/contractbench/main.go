package main

import (
	"bytes"
	"cmp"
	"flag"
	"github.com/lithdew/bytesutil"
	"github.com/pkg/profile"
	contract "github.com/twschiller/daikon-code-contract-extensions"
	"github.com/valyala/bytebufferpool"
	"log"
	"math/rand"
	"slices"
	"time"
)

var iterations int
var size int
var enableLogs bool
var enableProfiling bool

var pool bytebufferpool.Pool

func check(ok bool, format string, args ...interface{}) {
	if !ok {
		log.Panicf(format, args...)
	}
}

func acquireRandom(n int) *bytebufferpool.ByteBuffer {
	b := pool.Get()
	b.B = bytesutil.ExtendSlice(b.B, n)
	b.B = bytesutil.RandomSlice(b.B)
	return b
}

func checkSubsequence(parent []byte) {
	if len(parent) == 0 {
		return
	}

	start := rand.Intn(len(parent))
	end := start + 1 + rand.Intn(len(parent)-start)
	target := parent[start:end]

	// The naive matcher may miss a run that overlaps a failed partial match, so only a run that is found
	// must also be found by the single-pass variant.

	found := contract.IsSubsequence(target, parent)
	check(found == contract.IsSubsequenceSeq(target, slices.Values(parent)), "slice and seq matchers disagree on %x in %x", target, parent)
	check(contract.IsSubsequence(parent, parent), "%x is not a run of itself", parent)
}

func checkLex(a, b []byte) {
	expected := bytes.Compare(a, b)

	check(contract.Compare(a, b, cmp.Compare[byte]) == expected, "compare %x and %x: expected %d", a, b, expected)

	// A lexically smaller a always has a lesser pair or is a shorter prefix, so LT must hold. The converse does not
	// follow, since a later lesser pair makes LT hold after a greater one.

	check(expected >= 0 || contract.LexLT(a, b), "%x < %x: expected true", a, b)
	check(expected < 0 || contract.LexGTE(a, b), "%x >= %x: expected true", a, b)
	check(len(a) == 0 || !contract.LexLTE(a, a), "%x <= itself: expected false for the same slice", a)
}

func checkSerialKeys(x, y uint16) {
	kx := bytesutil.AppendUint16BE(nil, x)
	ky := bytesutil.AppendUint16BE(nil, y)

	check((contract.Compare(kx, ky, cmp.Compare[byte]) < 0) == (x < y), "big-endian key order of %d and %d", x, y)
	check(contract.SerialGT(x+1, x), "%d+1 is not ahead of %d", x, x)
}

func validateFlags() {
	check(iterations >= 0, "-n must not be negative, got %d", iterations)
	check(size >= 0, "-size must not be negative, got %d", size)
}

func run() {
	start := time.Now()

	for i := 0; i < iterations; i++ {
		a := acquireRandom(rand.Intn(size + 1))
		b := acquireRandom(rand.Intn(size + 1))

		checkSubsequence(a.B)
		checkLex(a.B, b.B)
		checkSerialKeys(uint16(rand.Intn(1<<16)), uint16(rand.Intn(1<<16)))

		if enableLogs {
			log.Printf("iteration %d: compared %d and %d byte(s)", i, len(a.B), len(b.B))
		}

		pool.Put(a)
		pool.Put(b)
	}

	log.Printf("ran %d iteration(s) in %s", iterations, time.Since(start))
}

func main() {
	flag.IntVar(&iterations, "n", 100000, "number of iterations")
	flag.IntVar(&size, "size", 64, "maximum random sequence length")
	flag.BoolVar(&enableLogs, "log", false, "log every iteration")
	flag.BoolVar(&enableProfiling, "profile", false, "perform cpu profiling")
	flag.Parse()

	validateFlags()

	if enableProfiling {
		defer profile.Start(
			profile.CPUProfile,
			profile.NoShutdownHook,
			profile.ProfilePath("./cmd/contractbench"),
		).Stop()
	}

	log.Println("checking contract helpers against random data")
	run()
}
