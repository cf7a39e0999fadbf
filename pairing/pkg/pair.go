package pairing

import (
	"path/filepath"
	"strings"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/sampleid/pkg"
)

type Status int

const (
	NoForward Status = iota
	ForwardOnly
	Paired
)

func (s Status) String() string {
	switch s {
	case NoForward:
		return "no forward read"
	case ForwardOnly:
		return "forward read only"
	case Paired:
		return "paired"
	}
	return "unknown"
}

// ReadPair holds absolute paths to one sample's reads. Reverse is only
// meaningful when HasReverse is set.
type ReadPair struct {
	Forward    string
	Reverse    string
	HasReverse bool
}

func abs(path string) string {
	if a, e := filepath.Abs(path); e == nil {
		return a
	}
	return path
}

// Find locates the forward and reverse reads of id among paths. A name
// carrying the forward marker is never considered as a reverse read. When
// several files match the same role, the last one wins.
func Find(id string, paths []string, c sampleid.Convention, lg *logging.Logger) (ReadPair, Status) {
	var pair ReadPair
	forward := false
	for _, path := range paths {
		base := filepath.Base(path)
		if !strings.Contains(base, id) {
			continue
		}
		if strings.Contains(base, c.Forward) {
			pair.Forward = abs(path)
			forward = true
		} else if strings.Contains(base, c.Reverse) {
			pair.Reverse = abs(path)
			pair.HasReverse = true
		}
	}

	if !forward {
		lg.Debugf("Could not pair %v", id)
		return ReadPair{}, NoForward
	}
	if !pair.HasReverse {
		return pair, ForwardOnly
	}
	return pair, Paired
}
