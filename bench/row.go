// row.go
//
// One result row per (impl, mode, mix, dist, threads, ops, buckets, p_hot)
// datapoint, with the stable CSV rendering downstream plot scripts parse.

package bench

import (
	"io"

	"hashmark/constants"
	"hashmark/utils"
)

// Row is one benchmark datapoint. Field tags drive the JSON export; the
// CSV method pins the column order and precision by hand.
type Row struct {
	Impl         string  `json:"impl"`
	Mode         string  `json:"mode"`
	Mix          string  `json:"mix"`
	Dist         string  `json:"dist"`
	Threads      int     `json:"threads"`
	Ops          int     `json:"ops"`
	Buckets      int     `json:"bucket_count"`
	ReadRatio    float64 `json:"read_ratio"`
	PHot         float64 `json:"p_hot"`
	TimeS        float64 `json:"time_s"`
	Throughput   float64 `json:"throughput_mops"`
	Speedup      float64 `json:"speedup"`
	SeqBaselineS float64 `json:"seq_baseline_s"`
}

// MixLabel renders a read ratio as the conventional read/write split tag.
func MixLabel(readRatio float64) string {
	switch readRatio {
	case 0.8:
		return "80/20"
	case 0.5:
		return "50/50"
	case 0.95:
		return "95/5"
	}
	return "mix"
}

// CSV renders the row in schema order. Precision is part of the contract:
// ratios 2dp, times 6dp, throughput and speedup 3dp.
func (r Row) CSV() string {
	return r.Impl + "," + r.Mode + "," + r.Mix + "," + r.Dist + "," +
		utils.Itoa(r.Threads) + "," + utils.Itoa(r.Ops) + "," + utils.Itoa(r.Buckets) + "," +
		utils.Ftoa(r.ReadRatio, 2) + "," + utils.Ftoa(r.PHot, 2) + "," +
		utils.Ftoa(r.TimeS, 6) + "," + utils.Ftoa(r.Throughput, 3) + "," +
		utils.Ftoa(r.Speedup, 3) + "," + utils.Ftoa(r.SeqBaselineS, 6)
}

// WriteCSV emits the bracketed CSV block: begin marker, header, one line
// per row, end marker.
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := io.WriteString(w, constants.CSVBegin+"\n"+constants.CSVHeader+"\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := io.WriteString(w, r.CSV()+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, constants.CSVEnd+"\n")
	return err
}
