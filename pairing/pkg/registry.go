package pairing

import (
	"fmt"
	"sort"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/sampleid/pkg"
)

// Policy decides what happens to a sample that has a forward read but no
// reverse read.
type Policy int

const (
	DropUnpaired Policy = iota
	KeepUnpaired
)

func ParsePolicy(keepUnpaired bool) Policy {
	if keepUnpaired {
		return KeepUnpaired
	}
	return DropUnpaired
}

type Registry map[string]ReadPair

func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Paired returns the number of entries with both reads.
func (r Registry) Paired() int {
	n := 0
	for _, p := range r {
		if p.HasReverse {
			n++
		}
	}
	return n
}

func Populate(ids []string, paths []string, c sampleid.Convention, policy Policy, lg *logging.Logger) Registry {
	reg := Registry{}
	for _, id := range ids {
		pair, status := Find(id, paths, c, lg)
		switch status {
		case NoForward:
			continue
		case ForwardOnly:
			if policy == DropUnpaired {
				lg.Warnf("No reverse read for %v; leaving it out", id)
				continue
			}
			lg.Warnf("No reverse read for %v; keeping forward read only", id)
		}
		reg[id] = pair
	}
	return reg
}

// BuildRegistry maps every valid sample ID in dir to its read pair.
func BuildRegistry(dir string, c sampleid.Convention, policy Policy, lg *logging.Logger) (Registry, error) {
	paths, e := sampleid.ListReads(dir, c)
	if e != nil {
		return nil, fmt.Errorf("BuildRegistry: %w", e)
	}
	ids := sampleid.UniqueIDs(paths, c, lg)
	return Populate(ids, paths, c, policy, lg), nil
}
