// baseline.go
//
// Per-configuration sequential baseline cache.  The first datapoint of a
// configuration runs the workload once on the sequential table with one
// worker; every later parallel datapoint with the same configuration
// divides by that cached time.

package bench

import (
	"hashmark/hashkey"
	"hashmark/seqtable"
	"hashmark/table"
)

// baselineKey is the full configuration a baseline is valid for.
type baselineKey struct {
	mode      string
	readRatio float64
	dist      string
	buckets   int
	pHot      float64
	ops       int
}

// BaselineCache memoizes sequential reference times.
type BaselineCache struct {
	hotFrac float64
	times   map[baselineKey]float64
}

// NewBaselineCache builds an empty cache for one sweep's hot fraction.
func NewBaselineCache(hotFrac float64) *BaselineCache {
	return &BaselineCache{
		hotFrac: hotFrac,
		times:   make(map[baselineKey]float64),
	}
}

// sequentialBuilder is the denominator of every speedup figure.
var sequentialBuilder = Builder{
	Name: "Sequential",
	New: func(buckets, _ int) table.Map[int, int] {
		return seqtable.New[int, int](buckets, hashkey.Int[int]())
	},
}

// Get returns the cached sequential time for the configuration, running
// the single-threaded workload on the first request.
func (c *BaselineCache) Get(mode, dist string, readRatio float64, buckets int, pHot float64, ops int) float64 {
	k := baselineKey{mode: mode, readRatio: readRatio, dist: dist, buckets: buckets, pHot: pHot, ops: ops}
	if t, ok := c.times[k]; ok {
		return t
	}
	t := RunWorkload(sequentialBuilder, 1, ops, readRatio, dist == "skew", buckets, pHot, c.hotFrac)
	c.times[k] = t
	return t
}

// Len reports how many distinct configurations have been measured.
func (c *BaselineCache) Len() int { return len(c.times) }
