// config.go
//
// Sweep configuration.  The compiled-in defaults reproduce the canonical
// matrix; a JSON file can override any vector without rebuilding.

package bench

import (
	"fmt"
	"os"

	"github.com/sugawarayuuta/sonnet"

	"hashmark/constants"
)

// Config is one sweep's shape: which thread counts, operation budgets,
// bucket counts, read mixes, and skew intensities to cross.
type Config struct {
	Threads          []int     `json:"threads"`
	StrongOps        int       `json:"strong_ops"`
	WeakOpsPerThread int       `json:"weak_ops_per_thread"`
	ReadMixes        []float64 `json:"read_mixes"`
	Buckets          []int     `json:"bucket_counts"`
	PHots            []float64 `json:"p_hots"`
	HotFraction      float64   `json:"hot_fraction"`
}

// DefaultConfig copies the compiled-in sweep vectors.
func DefaultConfig() Config {
	return Config{
		Threads:          append([]int(nil), constants.ThreadsVec...),
		StrongOps:        constants.StrongOps,
		WeakOpsPerThread: constants.WeakOpsPerThread,
		ReadMixes:        append([]float64(nil), constants.ReadMixes...),
		Buckets:          append([]int(nil), constants.BucketsVec...),
		PHots:            append([]float64(nil), constants.PHots...),
		HotFraction:      constants.HotFraction,
	}
}

// LoadConfig decodes a JSON sweep config; absent fields keep their
// defaults, so a file may override just one vector.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := sonnet.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Threads) == 0 || len(c.ReadMixes) == 0 || len(c.Buckets) == 0 {
		return fmt.Errorf("threads, read_mixes and bucket_counts must be non-empty")
	}
	for _, t := range c.Threads {
		if t < 1 {
			return fmt.Errorf("thread count %d out of range", t)
		}
	}
	if c.StrongOps < 2 || c.WeakOpsPerThread < 2 {
		return fmt.Errorf("operation budgets must be at least 2")
	}
	if c.HotFraction <= 0 || c.HotFraction > 1 {
		return fmt.Errorf("hot_fraction %v out of (0, 1]", c.HotFraction)
	}
	return nil
}

// WriteJSON exports rows as a JSON array next to the CSV block, for
// consumers that would rather not scrape stdout.
func WriteJSON(path string, rows []Row) error {
	data, err := sonnet.Marshal(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
