// ════════════════════════════════════════════════════════════════════════════════════════════════
// Word Count Demo - Concurrent Frequency Counting
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Concurrent Hash Table Benchmark Suite
// Component: Word Count Application
//
// Description:
//   Counts word frequencies in a text file with the padded fine-grained
//   table. Each worker folds its slice of the word stream through
//   Increment, which merges under the bucket guard, so counts for one word
//   never lose updates regardless of how the words are distributed.
//
// Usage:
//   word_count_library <input_file> <num_threads>
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
		debug.DropMessage("USAGE", "word_count_library <input_file> <num_threads>")
		os.Exit(1)
	}
	path := os.Args[1]
	threads, ok := utils.ParseIntArg(os.Args[2])
	if !ok || threads < 1 {
		debug.DropMessage("ERROR", "invalid thread count "+os.Args[2])
		os.Exit(1)
	}

	words, err := dataio.ReadWords(path)
	if err != nil {
		debug.DropError("IO", err)
		os.Exit(1)
	}

	counts := fine.NewPadded[string, int](8192, hashkey.Str[string]())

	start := time.Now()
	var wg sync.WaitGroup
	chunk := (len(words) + threads - 1) / threads
	for t := 0; t < threads; t++ {
		lo := t * chunk
		if lo >= len(words) {
			break
		}
		hi := lo + chunk
		if hi > len(words) {
			hi = len(words)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for _, w := range words[lo:hi] {
				fine.IncrementPadded(counts, w, 1)
			}
		}(lo, hi)
	}
	wg.Wait()
	elapsed := time.Since(start).Seconds()

	fmt.Printf("Total words: %d\n", len(words))
	fmt.Printf("Unique words: %d\n", counts.Size())
	fmt.Printf("Time: %.4f seconds\n", elapsed)
	fmt.Printf("Throughput: %.2f M words/second\n", float64(len(words))/elapsed/1e6)
}
