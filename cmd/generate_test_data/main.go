// generate_test_data — writes demo input files.
//
// Usage:
//   generate_test_data words <count> <output_file>
//   generate_test_data ints  <count> <key_range> <output_file>

package main

import (
	"os"

	"hashmark/dataio"
	"hashmark/debug"
	"hashmark/utils"
)

const genSeed = 0x5EED

func main() {
	usage := func() {
		debug.DropMessage("USAGE",
			"generate_test_data words <count> <out> | generate_test_data ints <count> <key_range> <out>")
		os.Exit(1)
	}
	if len(os.Args) < 4 {
		usage()
	}

	switch os.Args[1] {
	case "words":
		count, ok := utils.ParseIntArg(os.Args[2])
		if !ok || count < 1 {
			usage()
		}
		if err := dataio.GenerateWords(os.Args[3], count, genSeed); err != nil {
			debug.DropError("IO", err)
			os.Exit(1)
		}
	case "ints":
		if len(os.Args) < 5 {
			usage()
		}
		count, ok1 := utils.ParseIntArg(os.Args[2])
		keyRange, ok2 := utils.ParseIntArg(os.Args[3])
		if !ok1 || !ok2 || count < 1 || keyRange < 1 {
			usage()
		}
		if err := dataio.GenerateInts(os.Args[4], count, keyRange, genSeed); err != nil {
			debug.DropError("IO", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}
