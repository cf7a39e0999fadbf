package readstats

import (
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/iter"
	"github.com/shenwei356/bio/seqio/fastx"
)

// FileCount is the number of records and bases in one read file.
type FileCount struct {
	Path  string
	Reads int64
	Bases int64
}

// Records iterates over the FASTQ records of a plain or compressed file. The
// record passed to yield is only valid until yield returns.
func Records(path string) *iter.Iterator[*fastx.Record] {
	return &iter.Iterator[*fastx.Record]{Iteratef: func(yield func(*fastx.Record) error) error {
		r, e := fastx.NewDefaultReader(path)
		if e != nil {
			return fmt.Errorf("Records: %v: %w", path, e)
		}
		defer r.Close()

		for {
			rec, e := r.Read()
			if e == io.EOF {
				return nil
			}
			if e != nil {
				return fmt.Errorf("Records: %v: %w", path, e)
			}
			if e := yield(rec); e != nil {
				return e
			}
		}
	}}
}

func CountReads(path string) (FileCount, error) {
	c := FileCount{Path: path}
	e := Records(path).Iterate(func(rec *fastx.Record) error {
		c.Reads++
		c.Bases += int64(len(rec.Seq.Seq))
		return nil
	})
	if e != nil {
		return c, fmt.Errorf("CountReads: %w", e)
	}
	return c, nil
}
