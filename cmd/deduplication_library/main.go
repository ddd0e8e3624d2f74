// ════════════════════════════════════════════════════════════════════════════════════════════════
// Deduplication Demo - Concurrent Unique Counting
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Concurrent Hash Table Benchmark Suite
// Component: Deduplication Application
//
// Description:
//   Reads a whitespace-separated integer stream and reports the unique
//   count. Insert already answers "was this new" atomically, so the whole
//   demo is one parallel pass plus Size().
//
// Usage:
//   deduplication_library <input_file> <num_threads>
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"hashmark/dataio"
	"hashmark/debug"
	"hashmark/fine"
	"hashmark/hashkey"
	"hashmark/utils"
)

func main() {
	if len(os.Args) < 3 {
		debug.DropMessage("USAGE", "deduplication_library <input_file> <num_threads>")
		os.Exit(1)
	}
	path := os.Args[1]
	threads, ok := utils.ParseIntArg(os.Args[2])
	if !ok || threads < 1 {
		debug.DropMessage("ERROR", "invalid thread count "+os.Args[2])
		os.Exit(1)
	}

	data, err := dataio.ReadInts(path)
	if err != nil {
		debug.DropError("IO", err)
		os.Exit(1)
	}

	seen := fine.New[int, bool](8192, hashkey.Int[int]())

	start := time.Now()
	var wg sync.WaitGroup
	chunk := (len(data) + threads - 1) / threads
	for t := 0; t < threads; t++ {
		lo := t * chunk
		if lo >= len(data) {
			break
		}
		hi := lo + chunk
		if hi > len(data) {
			hi = len(data)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for _, v := range data[lo:hi] {
				seen.Insert(v, true)
			}
		}(lo, hi)
	}
	wg.Wait()
	elapsed := time.Since(start).Seconds()

	fmt.Printf("Total values: %d\n", len(data))
	fmt.Printf("Unique values: %d\n", seen.Size())
	fmt.Printf("Time: %.4f seconds\n", elapsed)
	fmt.Printf("Throughput: %.2f M values/second\n", float64(len(data))/elapsed/1e6)
}
