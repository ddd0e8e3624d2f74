// dataio.go
//
// Input parsing for the demo applications: whitespace-delimited words
// (lowercased, stripped of non-alphanumerics) and integer streams.  Pure
// glue — the demos' contract with the library is just "a stream of keys".

package dataio

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CleanWord lowercases w and strips every non-alphanumeric byte. Returns
// "" when nothing survives (pure punctuation tokens).
func CleanWord(w string) string {
	var sb strings.Builder
	for i := 0; i < len(w); i++ {
		c := w[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			sb.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			sb.WriteByte(c + ('a' - 'A'))
		}
	}
	return sb.String()
}

// ReadWords loads a whitespace-delimited text file as cleaned words.
// An unreadable or effectively empty file is an error; the demos exit
// non-zero on it.
func ReadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(data))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := CleanWord(f); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: no words", path)
	}
	return words, nil
}

// ReadInts loads a whitespace-separated integer file.
func ReadInts(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(data))
	ints := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%s: bad integer %q", path, f)
		}
		ints = append(ints, v)
	}
	if len(ints) == 0 {
		return nil, fmt.Errorf("%s: no integers", path)
	}
	return ints, nil
}
