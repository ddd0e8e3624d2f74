// ════════════════════════════════════════════════════════════════════════════════════════════════
// Cache Simulation Demo - Synthetic Read/Write Stream
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Concurrent Hash Table Benchmark Suite
// Component: Cache Simulation Application
//
// Description:
//   Generates a deterministic read/write operation stream over a bounded
//   key range and replays it against the fine-grained table, once per
//   requested thread count, reporting hit/miss counts and throughput.
//
// Usage:
//   cache_sim_benchmark <ops> <key_range> <read_ratio> [threads...]
//
//   With no thread list, 1 2 4 8 run in turn.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"hashmark/debug"
	"hashmark/fine"
	"hashmark/hashkey"
	"hashmark/hotset"
	"hashmark/utils"
)

// op is one cache access: read probes, write installs.
type op struct {
	key   int
	value int
	read  bool
}

// buildStream generates the deterministic operation stream every thread
// count replays, so runs are comparable.
func buildStream(ops, keyRange int, readRatio float64) []op {
	rng := hotset.NewRand(hotset.MixSeed(0xCACE, 0))
	stream := make([]op, ops)
	for i := range stream {
		stream[i] = op{
			key:   rng.Intn(keyRange),
			value: i,
			read:  rng.Float64() < readRatio,
		}
	}
	return stream
}

func runSim(stream []op, threads int) (hits, misses uint64, seconds float64) {
	cache := fine.New[int, int](8192, hashkey.Int[int]())
	var hitCount, missCount atomic.Uint64

	start := time.Now()
	var wg sync.WaitGroup
	chunk := (len(stream) + threads - 1) / threads
	for t := 0; t < threads; t++ {
		lo := t * chunk
		if lo >= len(stream) {
			break
		}
		hi := lo + chunk
		if hi > len(stream) {
			hi = len(stream)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			var h, m uint64
			for _, o := range stream[lo:hi] {
				if o.read {
					if _, ok := cache.Search(o.key); ok {
						h++
					} else {
						m++
					}
				} else {
					if cache.Insert(o.key, o.value) {
						m++ // cold write: key was not resident
					}
				}
			}
			hitCount.Add(h)
			missCount.Add(m)
		}(lo, hi)
	}
	wg.Wait()
	return hitCount.Load(), missCount.Load(), time.Since(start).Seconds()
}

func main() {
	if len(os.Args) < 4 {
		debug.DropMessage("USAGE", "cache_sim_benchmark <ops> <key_range> <read_ratio> [threads...]")
		os.Exit(1)
	}
	ops, ok1 := utils.ParseIntArg(os.Args[1])
	keyRange, ok2 := utils.ParseIntArg(os.Args[2])
	readRatio, ok3 := utils.ParseFloatArg(os.Args[3])
	if !ok1 || !ok2 || !ok3 || ops < 1 || keyRange < 1 || readRatio < 0 || readRatio > 1 {
		debug.DropMessage("ERROR", "invalid arguments")
		os.Exit(1)
	}

	threadList := []int{1, 2, 4, 8}
	if len(os.Args) > 4 {
		threadList = threadList[:0]
		for _, a := range os.Args[4:] {
			t, ok := utils.ParseIntArg(a)
			if !ok || t < 1 {
				debug.DropMessage("ERROR", "invalid thread count "+a)
				os.Exit(1)
			}
			threadList = append(threadList, t)
		}
	}

	stream := buildStream(ops, keyRange, readRatio)
	for _, threads := range threadList {
		hits, misses, seconds := runSim(stream, threads)
		fmt.Printf("T=%2d  ops=%d  hits=%d  misses=%d  hit_rate=%.2f%%  time=%.4f s  thr=%.2f Mops\n",
			threads, ops, hits, misses,
			100*float64(hits)/float64(hits+misses), seconds, float64(ops)/seconds/1e6)
	}
}
