package readstats

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/shenwei356/xopen"
)

type Summary struct {
	Samples    int
	Unbalanced int
	Total      int64
	Mean       float64
	Median     float64
	Min        float64
	Max        float64
}

// Summarize describes the distribution of per-sample read counts (forward
// plus reverse).
func Summarize(counts []SampleCount) (Summary, error) {
	s := Summary{Samples: len(counts)}
	if len(counts) == 0 {
		return s, nil
	}

	data := make(stats.Float64Data, 0, len(counts))
	for _, c := range counts {
		data = append(data, float64(c.Reads()))
		s.Total += c.Reads()
		if !c.Balanced() {
			s.Unbalanced++
		}
	}

	var e error
	if s.Mean, e = data.Mean(); e != nil {
		return s, fmt.Errorf("Summarize: %w", e)
	}
	if s.Median, e = data.Median(); e != nil {
		return s, fmt.Errorf("Summarize: %w", e)
	}
	if s.Min, e = data.Min(); e != nil {
		return s, fmt.Errorf("Summarize: %w", e)
	}
	if s.Max, e = data.Max(); e != nil {
		return s, fmt.Errorf("Summarize: %w", e)
	}
	return s, nil
}

var TableHeader = []string{"sample-id", "forward-reads", "reverse-reads", "forward-bases", "reverse-bases"}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}

// Write prints the per-sample table followed by "#"-prefixed summary lines.
func Write(w io.Writer, counts []SampleCount, s Summary) error {
	cw := csv.NewWriter(w)
	cw.Comma = rune('\t')
	if e := cw.Write(TableHeader); e != nil {
		return fmt.Errorf("Write: %w", e)
	}
	for _, c := range counts {
		row := []string{c.ID, itoa(c.Forward.Reads), itoa(c.Reverse.Reads), itoa(c.Forward.Bases), itoa(c.Reverse.Bases)}
		if e := cw.Write(row); e != nil {
			return fmt.Errorf("Write: %w", e)
		}
	}
	cw.Flush()
	if e := cw.Error(); e != nil {
		return fmt.Errorf("Write: %w", e)
	}

	_, e := fmt.Fprintf(w, "# samples\t%v\n# unbalanced\t%v\n# total reads\t%v\n# mean\t%.1f\n# median\t%.1f\n# min\t%.0f\n# max\t%.0f\n",
		s.Samples, s.Unbalanced, s.Total, s.Mean, s.Median, s.Min, s.Max)
	return e
}

// WritePath writes the report to path, gzipped if path ends in .gz. A path of
// "-" means standard output.
func WritePath(path string, counts []SampleCount, s Summary) (err error) {
	w, e := xopen.Wopen(path)
	if e != nil {
		return fmt.Errorf("WritePath: %w", e)
	}
	defer func() {
		if e := w.Close(); err == nil && e != nil {
			err = fmt.Errorf("WritePath: %w", e)
		}
	}()
	bw := bufio.NewWriter(w)
	if e := Write(bw, counts, s); e != nil {
		return e
	}
	return bw.Flush()
}
