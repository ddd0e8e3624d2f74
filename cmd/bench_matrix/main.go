// ════════════════════════════════════════════════════════════════════════════════════════════════
// Concurrent Hash Table Benchmark Matrix - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Concurrent Hash Table Benchmark Suite
// Component: Full-Sweep Driver
//
// Description:
//   Runs every table variant through the complete configuration matrix
//   (strong/weak scaling × read mixes × bucket counts × uniform/skewed keys)
//   and emits the bracketed CSV result block on stdout.
//
// Usage:
//   bench_matrix [--config=sweep.json] [--db=results.db] [--json=results.json]
//
//   With no arguments the compiled-in sweep runs and only the log + CSV are
//   produced. The optional flags add a JSON sweep override, a sqlite result
//   sink, and a JSON export.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"
	"strings"

	"hashmark/bench"
	"hashmark/debug"
	"hashmark/utils"
)

func main() {
	cfg := bench.DefaultConfig()
	dbPath := ""
	jsonPath := ""

	for _, arg := range os.Args[1:] {
		switch {
		case strings.HasPrefix(arg, "--config="):
			loaded, err := bench.LoadConfig(strings.TrimPrefix(arg, "--config="))
			if err != nil {
				debug.DropError("CONFIG", err)
				os.Exit(1)
			}
			cfg = loaded
		case strings.HasPrefix(arg, "--db="):
			dbPath = strings.TrimPrefix(arg, "--db=")
		case strings.HasPrefix(arg, "--json="):
			jsonPath = strings.TrimPrefix(arg, "--json=")
		default:
			debug.DropMessage("USAGE",
				"bench_matrix [--config=sweep.json] [--db=results.db] [--json=results.json]")
			os.Exit(1)
		}
	}

	bench.EchoAffinity()

	matrix := bench.NewMatrix(cfg)
	for _, b := range bench.Builders() {
		debug.DropMessage("SWEEP", b.Name)
		matrix.RunImpl(b)
	}
	debug.DropMessage("DONE", utils.Itoa(len(matrix.Rows))+" datapoints")

	if err := bench.WriteCSV(os.Stdout, matrix.Rows); err != nil {
		debug.DropError("CSV", err)
		os.Exit(1)
	}

	if dbPath != "" {
		store, err := bench.OpenStore(dbPath)
		if err != nil {
			debug.DropError("DB", err)
			os.Exit(1)
		}
		if err := store.SaveRows(matrix.Rows); err != nil {
			store.Close()
			debug.DropError("DB", err)
			os.Exit(1)
		}
		store.Close()
		debug.DropMessage("DB", "saved "+utils.Itoa(len(matrix.Rows))+" rows to "+dbPath)
	}

	if jsonPath != "" {
		if err := bench.WriteJSON(jsonPath, matrix.Rows); err != nil {
			debug.DropError("JSON", err)
			os.Exit(1)
		}
		debug.DropMessage("JSON", "exported to "+jsonPath)
	}
}
