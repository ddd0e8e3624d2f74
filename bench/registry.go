// registry.go
//
// The catalogue of benchmarkable variants.  Builders construct int→int
// tables because that is what the workload drives; the library itself
// stays generic.

package bench

import (
	"hashmark/agh"
	"hashmark/coarse"
	"hashmark/fine"
	"hashmark/hashkey"
	"hashmark/lockfree"
	"hashmark/segment"
	"hashmark/striped"
	"hashmark/table"
)

// Builders lists every concurrent variant in sweep order.
func Builders() []Builder {
	hash := hashkey.Int[int]()
	return []Builder{
		{Name: "Coarse", New: func(b, _ int) table.Map[int, int] {
			return coarse.New[int, int](b, hash)
		}},
		{Name: "Fine", New: func(b, _ int) table.Map[int, int] {
			return fine.New[int, int](b, hash)
		}},
		{Name: "Fine-Padded", New: func(b, _ int) table.Map[int, int] {
			return fine.NewPadded[int, int](b, hash)
		}},
		{Name: "Segment", New: func(b, _ int) table.Map[int, int] {
			return segment.New[int, int](b, hash)
		}},
		{Name: "Segment-Padded", New: func(b, _ int) table.Map[int, int] {
			return segment.NewPadded[int, int](b, hash)
		}},
		{Name: "Segment-Exact", New: func(b, _ int) table.Map[int, int] {
			return segment.NewExact[int, int](b, hash)
		}},
		{Name: "Striped", New: func(b, _ int) table.Map[int, int] {
			return striped.New[int, int](b, 0, hash)
		}},
		{Name: "AGH", New: func(b, threads int) table.Map[int, int] {
			return agh.New[int, int](b, threads, hash)
		}},
		{Name: "Lock-Free", New: func(b, _ int) table.Map[int, int] {
			return lockfree.New[int, int](b, hash)
		}},
	}
}

// cliAlias maps --impl= spellings to builder names.
var cliAlias = map[string]string{
	"coarse":         "Coarse",
	"fine":           "Fine",
	"fine-padded":    "Fine-Padded",
	"segment":        "Segment",
	"segment-padded": "Segment-Padded",
	"segment-exact":  "Segment-Exact",
	"striped":        "Striped",
	"agh":            "AGH",
	"lockfree":       "Lock-Free",
	"lock-free":      "Lock-Free",
}

// BuilderByName resolves a CLI implementation name.
func BuilderByName(name string) (Builder, bool) {
	want, ok := cliAlias[name]
	if !ok {
		return Builder{}, false
	}
	for _, b := range Builders() {
		if b.Name == want {
			return b, true
		}
	}
	return Builder{}, false
}
