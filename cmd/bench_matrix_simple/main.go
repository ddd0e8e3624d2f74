// ════════════════════════════════════════════════════════════════════════════════════════════════
// Concurrent Hash Table Benchmark Matrix - Single Implementation Driver
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Concurrent Hash Table Benchmark Suite
// Component: One-Variant Sweep
//
// Description:
//   Same sweep as bench_matrix, restricted to one implementation selected
//   with --impl=. Useful when iterating on a single locking discipline.
//
// Usage:
//   bench_matrix_simple --impl=<coarse|fine|segment|lockfree|...>
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"
	"strings"

	"hashmark/bench"
	"hashmark/debug"
)

func main() {
	if len(os.Args) < 2 || !strings.HasPrefix(os.Args[1], "--impl=") {
		debug.DropMessage("USAGE", "bench_matrix_simple --impl=<coarse|fine|segment|lockfree>")
		os.Exit(1)
	}
	name := strings.TrimPrefix(os.Args[1], "--impl=")
	builder, ok := bench.BuilderByName(name)
	if !ok {
		debug.DropMessage("ERROR", "unknown --impl="+name)
		os.Exit(1)
	}

	bench.EchoAffinity()

	matrix := bench.NewMatrix(bench.DefaultConfig())
	matrix.RunImpl(builder)

	if err := bench.WriteCSV(os.Stdout, matrix.Rows); err != nil {
		debug.DropError("CSV", err)
		os.Exit(1)
	}
}
