package readstats

import (
	"context"
	"sync"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
	"golang.org/x/sync/errgroup"
)

type SampleCount struct {
	ID      string
	Forward FileCount
	Reverse FileCount
}

// Balanced reports whether both reads of the pair hold the same number of
// records, as they must for paired-end data.
func (s SampleCount) Balanced() bool {
	return s.Forward.Reads == s.Reverse.Reads
}

func (s SampleCount) Reads() int64 {
	return s.Forward.Reads + s.Reverse.Reads
}

// Collect counts the reads of every paired sample in reg, in sorted sample
// order. threads bounds the number of files read at once; threads <= 1 reads
// them one at a time.
func Collect(ctx context.Context, reg pairing.Registry, threads int, lg *logging.Logger) ([]SampleCount, error) {
	var ids []string
	for _, id := range reg.IDs() {
		if reg[id].HasReverse {
			ids = append(ids, id)
		} else {
			lg.Warnf("Skipping read counts for %v: no reverse read", id)
		}
	}

	out := make([]SampleCount, len(ids))
	var mu sync.Mutex

	g, ctx2 := errgroup.WithContext(ctx)
	if threads < 1 {
		threads = 1
	}
	g.SetLimit(threads)

	for i, id := range ids {
		i, id := i, id
		pair := reg[id]
		out[i].ID = id
		for _, path := range []string{pair.Forward, pair.Reverse} {
			path := path
			forward := path == pair.Forward
			g.Go(func() error {
				if e := ctx2.Err(); e != nil {
					return e
				}
				c, e := CountReads(path)
				if e != nil {
					return e
				}
				mu.Lock()
				defer mu.Unlock()
				if forward {
					out[i].Forward = c
				} else {
					out[i].Reverse = c
				}
				return nil
			})
		}
	}
	if e := g.Wait(); e != nil {
		return nil, e
	}

	for _, s := range out {
		if !s.Balanced() {
			lg.Warnf("Read counts differ for %v: forward %v, reverse %v", s.ID, s.Forward.Reads, s.Reverse.Reads)
		}
	}
	return out, nil
}
