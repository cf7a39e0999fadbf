package readstats

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
)

const fq3 = `@r1
ACGTACGT
+
IIIIIIII
@r2
ACGT
+
IIII
@r3
ACGTAC
+
IIIIII
`

const fq2 = `@r1
ACGTACGT
+
IIIIIIII
@r2
ACGT
+
IIII
`

func writeGz(path, content string) {
	f, e := os.Create(path)
	if e != nil {
		panic(e)
	}
	defer f.Close()
	gw := gzip.NewWriter(f)
	if _, e := gw.Write([]byte(content)); e != nil {
		panic(e)
	}
	if e := gw.Close(); e != nil {
		panic(e)
	}
}

func TestCountReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2015-SEQ-0001_S1_L001_R1_001.fastq.gz")
	writeGz(path, fq3)
	c, e := CountReads(path)
	if e != nil {
		panic(e)
	}
	if c.Reads != 3 || c.Bases != 18 {
		t.Errorf("count %+v != expect 3 reads, 18 bases", c)
	}
}

func TestCountReadsMissing(t *testing.T) {
	if _, e := CountReads(filepath.Join(t.TempDir(), "missing.fastq.gz")); e == nil {
		t.Errorf("no error for a missing file")
	}
}

func testRegistry(dir string) pairing.Registry {
	paths := map[string]string{
		"a1": filepath.Join(dir, "2015-SEQ-0001_S1_L001_R1_001.fastq.gz"),
		"a2": filepath.Join(dir, "2015-SEQ-0001_S1_L001_R2_001.fastq.gz"),
		"b1": filepath.Join(dir, "2015-SEQ-0002_S2_L001_R1_001.fastq.gz"),
		"b2": filepath.Join(dir, "2015-SEQ-0002_S2_L001_R2_001.fastq.gz"),
	}
	writeGz(paths["a1"], fq3)
	writeGz(paths["a2"], fq3)
	writeGz(paths["b1"], fq2)
	writeGz(paths["b2"], fq3)
	return pairing.Registry{
		"2015-SEQ-0001": {Forward: paths["a1"], Reverse: paths["a2"], HasReverse: true},
		"2015-SEQ-0002": {Forward: paths["b1"], Reverse: paths["b2"], HasReverse: true},
		"2015-SEQ-0003": {Forward: filepath.Join(dir, "2015-SEQ-0003_S3_L001_R1_001.fastq.gz"), Reverse: "", HasReverse: false},
	}
}

func TestCollect(t *testing.T) {
	for _, threads := range []int{0, 1, 4} {
		reg := testRegistry(t.TempDir())
		var b strings.Builder
		counts, e := Collect(context.Background(), reg, threads, logging.New(&b, logging.Debug))
		if e != nil {
			panic(e)
		}
		if len(counts) != 2 {
			t.Fatalf("threads %v: counts %v != expect 2 samples", threads, counts)
		}
		if counts[0].ID != "2015-SEQ-0001" || counts[0].Reads() != 6 || !counts[0].Balanced() {
			t.Errorf("threads %v: first %+v", threads, counts[0])
		}
		if counts[1].ID != "2015-SEQ-0002" || counts[1].Forward.Reads != 2 || counts[1].Reverse.Reads != 3 {
			t.Errorf("threads %v: second %+v", threads, counts[1])
		}
		if !strings.Contains(b.String(), "Read counts differ for 2015-SEQ-0002") {
			t.Errorf("threads %v: log %q missing imbalance warning", threads, b.String())
		}
	}
}

func TestSummarize(t *testing.T) {
	counts := []SampleCount{
		{ID: "a", Forward: FileCount{Reads: 3}, Reverse: FileCount{Reads: 3}},
		{ID: "b", Forward: FileCount{Reads: 2}, Reverse: FileCount{Reads: 3}},
		{ID: "c", Forward: FileCount{Reads: 10}, Reverse: FileCount{Reads: 10}},
	}
	s, e := Summarize(counts)
	if e != nil {
		panic(e)
	}
	expect := Summary{Samples: 3, Unbalanced: 1, Total: 31, Mean: 31.0 / 3.0, Median: 6, Min: 5, Max: 20}
	if s != expect {
		t.Errorf("summary %+v != expect %+v", s, expect)
	}

	empty, e := Summarize(nil)
	if e != nil {
		panic(e)
	}
	if empty != (Summary{}) {
		t.Errorf("empty summary %+v", empty)
	}
}

func TestWrite(t *testing.T) {
	counts := []SampleCount{
		{ID: "2015-SEQ-0001", Forward: FileCount{Reads: 3, Bases: 18}, Reverse: FileCount{Reads: 3, Bases: 18}},
	}
	s, e := Summarize(counts)
	if e != nil {
		panic(e)
	}
	var b strings.Builder
	if e := Write(&b, counts, s); e != nil {
		panic(e)
	}
	out := b.String()
	if !strings.HasPrefix(out, "sample-id\tforward-reads\treverse-reads\tforward-bases\treverse-bases\n2015-SEQ-0001\t3\t3\t18\t18\n") {
		t.Errorf("out %v has the wrong table", out)
	}
	if !strings.Contains(out, "# median\t6.0\n") {
		t.Errorf("out %v missing median", out)
	}
}
