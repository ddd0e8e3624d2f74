// generate.go
//
// Test-data generators for the demo applications.  Word files draw from a
// small vocabulary with a Zipf-ish bias so frequency counting has shape;
// integer files draw from a bounded range so deduplication has duplicates.

package dataio

import (
	"os"
	"strconv"
	"strings"

	"hashmark/hotset"
)

// vocabulary for generated word files; repetition is the point.
var vocabulary = []string{
	"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "table", "bucket", "stripe", "segment", "thread", "cache",
	"line", "hash", "probe", "chain", "lock", "atomic", "insert", "search",
}

// GenerateWords writes count pseudo-words to path, 12 per line. The hot
// band of the generator biases draws toward the front of the vocabulary.
func GenerateWords(path string, count int, seed uint64) error {
	gen := hotset.New(len(vocabulary), 8, 0.7, seed)
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(vocabulary[gen.Draw()])
		if (i+1)%12 == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// GenerateInts writes count integers in [0, keyRange) to path, one per
// line. keyRange < count guarantees duplicates for the dedup demo.
func GenerateInts(path string, count, keyRange int, seed uint64) error {
	if keyRange < 1 {
		keyRange = 1
	}
	rng := hotset.NewRand(seed)
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(strconv.Itoa(rng.Intn(keyRange)))
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
