package sampleid

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownConvention = errors.New("unknown naming convention")

// Convention holds every positional or substring rule used to read meaning
// out of a MiSeq read file name.
type Convention struct {
	Name string

	// length of the sample ID prefix at the start of the basename
	IDLen int
	// separator and middle tag of the ID, e.g. 2015-SEQ-0001
	Sep string
	Tag string

	// read files picked up in a run directory
	Glob string

	// substrings marking the forward and reverse read
	Forward string
	Reverse string

	// substring that starts the lane / sample-number field, and the dummy
	// barcode inserted in front of it
	Lane    string
	Barcode string
}

var OLC = Convention{
	Name:    "olc",
	IDLen:   13,
	Sep:     "-",
	Tag:     "SEQ",
	Glob:    "*.fastq.gz",
	Forward: "_R1",
	Reverse: "_R2",
	Lane:    "_S",
	Barcode: "00",
}

// OLCStrict only treats _R1_ and _R2_ as read markers, so that e.g. _R10
// is not mistaken for a forward read.
var OLCStrict = Convention{
	Name:    "olc-strict",
	IDLen:   13,
	Sep:     "-",
	Tag:     "SEQ",
	Glob:    "*.fastq.gz",
	Forward: "_R1_",
	Reverse: "_R2_",
	Lane:    "_S",
	Barcode: "00",
}

var Conventions = map[string]Convention{
	OLC.Name:       OLC,
	OLCStrict.Name: OLCStrict,
}

func Lookup(name string) (Convention, error) {
	if name == "" {
		return OLC, nil
	}
	c, ok := Conventions[name]
	if !ok {
		return Convention{}, fmt.Errorf("Lookup: %q: %w", name, ErrUnknownConvention)
	}
	return c, nil
}

func Names() []string {
	out := make([]string, 0, len(Conventions))
	for name := range Conventions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// BarcodeInsert is the text placed in front of the lane marker, e.g. "_00".
func (c Convention) BarcodeInsert() string {
	return "_" + c.Barcode
}
