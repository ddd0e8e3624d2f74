// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: matrix.go — the full sweep: modes × mixes × buckets × threads
//
// Purpose:
//   - Crosses one implementation with every configuration axis, collecting
//     a Row per datapoint and echoing a human-readable line as it goes.
//
// Notes:
//   - Strong scaling holds total ops constant; weak scaling grows ops
//     linearly with the thread count.
//   - The uniform distribution runs once per thread count; the skewed
//     distribution repeats across the p_hot vector.
// ─────────────────────────────────────────────────────────────────────────────

package bench

import (
	"fmt"
	"os"
	"runtime"

	"hashmark/debug"
	"hashmark/utils"
)

// Matrix accumulates rows across implementations, sharing one baseline
// cache so every variant divides by the same sequential reference.
type Matrix struct {
	Config    Config
	Rows      []Row
	baselines *BaselineCache
}

// NewMatrix builds an empty matrix for the given sweep shape.
func NewMatrix(cfg Config) *Matrix {
	return &Matrix{
		Config:    cfg,
		baselines: NewBaselineCache(cfg.HotFraction),
	}
}

// EchoAffinity reports the thread-affinity environment to stderr for
// reproducibility. Go has no placement pragma of its own, so the OpenMP
// variables are echoed verbatim (they matter when runs are pinned via
// taskset or a batch scheduler) next to the live GOMAXPROCS value.
func EchoAffinity() {
	bind := os.Getenv("OMP_PROC_BIND")
	if bind == "" {
		bind = "(null)"
	}
	places := os.Getenv("OMP_PLACES")
	if places == "" {
		places = "(null)"
	}
	debug.DropMessage("AFFINITY",
		"OMP_PROC_BIND="+bind+" OMP_PLACES="+places+" GOMAXPROCS="+utils.Itoa(runtime.GOMAXPROCS(0)))
}

// RunImpl sweeps one implementation through both scaling modes.
func (x *Matrix) RunImpl(b Builder) {
	x.runMode(b, "strong")
	x.runMode(b, "weak")
}

func (x *Matrix) runMode(b Builder, mode string) {
	cfg := x.Config
	for _, mix := range cfg.ReadMixes {
		for _, buckets := range cfg.Buckets {
			for _, threads := range cfg.Threads {
				ops := cfg.StrongOps
				if mode == "weak" {
					ops = cfg.WeakOpsPerThread * threads
				}
				x.datapoint(b, mode, "uniform", mix, buckets, threads, ops, 0.0)
			}
			for _, pHot := range cfg.PHots {
				for _, threads := range cfg.Threads {
					ops := cfg.StrongOps
					if mode == "weak" {
						ops = cfg.WeakOpsPerThread * threads
					}
					x.datapoint(b, mode, "skew", mix, buckets, threads, ops, pHot)
				}
			}
		}
	}
}

// datapoint measures one configuration and records its row.
func (x *Matrix) datapoint(b Builder, mode, dist string, mix float64,
	buckets, threads, ops int, pHot float64) {

	baseline := x.baselines.Get(mode, dist, mix, buckets, pHot, ops)
	t := RunWorkload(b, threads, ops, mix, dist == "skew", buckets, pHot, x.Config.HotFraction)

	row := Row{
		Impl:         b.Name,
		Mode:         mode,
		Mix:          MixLabel(mix),
		Dist:         dist,
		Threads:      threads,
		Ops:          ops,
		Buckets:      buckets,
		ReadRatio:    mix,
		PHot:         pHot,
		TimeS:        t,
		Throughput:   float64(ops) / t / 1e6,
		Speedup:      baseline / t,
		SeqBaselineS: baseline,
	}
	x.Rows = append(x.Rows, row)

	if dist == "skew" {
		fmt.Printf("%-14s %-6s %5s %7s  T=%2d ops=%8d buckets=%7d p_hot=%4.2f  time=%.4f  thr=%.2f Mops  speedup=%.2f\n",
			b.Name, mode, row.Mix, dist, threads, ops, buckets, pHot, t, row.Throughput, row.Speedup)
	} else {
		fmt.Printf("%-14s %-6s %5s %7s  T=%2d ops=%8d buckets=%7d  time=%.4f  thr=%.2f Mops  speedup=%.2f\n",
			b.Name, mode, row.Mix, dist, threads, ops, buckets, t, row.Throughput, row.Speedup)
	}
}
