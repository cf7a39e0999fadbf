package manifest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fasttsv"
	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
)

// Header of a QIIME 2 PairedEndFastqManifestPhred33V2 file.
var Header = []string{"sample-id", "forward-absolute-filepath", "reverse-absolute-filepath"}

const Name = "manifest.tsv"

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// Write prints one row per paired sample, sorted by sample ID. Entries
// without a reverse read are skipped.
func Write(w io.Writer, reg pairing.Registry) error {
	h := handle("Write: %w")
	cw := csv.NewWriter(w)
	cw.Comma = rune('\t')

	if e := cw.Write(Header); e != nil {
		return h(e)
	}
	for _, id := range reg.IDs() {
		p := reg[id]
		if !p.HasReverse {
			continue
		}
		if e := cw.Write([]string{id, p.Forward, p.Reverse}); e != nil {
			return h(e)
		}
	}
	cw.Flush()
	if e := cw.Error(); e != nil {
		return h(e)
	}
	return nil
}

func WritePath(path string, reg pairing.Registry) (err error) {
	h := handle("WritePath: %w")
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return h(e)
	}
	defer func() {
		if e := w.Close(); err == nil && e != nil {
			err = h(e)
		}
	}()
	bw := bufio.NewWriter(w)
	if e := Write(bw, reg); e != nil {
		return h(e)
	}
	if e := bw.Flush(); e != nil {
		return h(e)
	}
	return nil
}

func Scan(line []string, ptrs ...*string) error {
	if len(line) < len(ptrs) {
		return fmt.Errorf("Scan: line %v has %v fields, want %v", line, len(line), len(ptrs))
	}
	for i, ptr := range ptrs {
		*ptr = line[i]
	}
	return nil
}

// Read parses a manifest written by Write. Comment lines and the header are
// skipped.
func Read(r io.Reader) (pairing.Registry, error) {
	reg := pairing.Registry{}
	s := fasttsv.NewScanner(r)
	for i := 0; s.Scan(); i++ {
		line := s.Line()
		if len(line) == 0 || line[0] == "" || line[0][0] == '#' || line[0] == Header[0] {
			continue
		}
		var id string
		var p pairing.ReadPair
		if e := Scan(line, &id, &p.Forward, &p.Reverse); e != nil {
			return nil, fmt.Errorf("Read: line %v: %w", i, e)
		}
		p.HasReverse = p.Reverse != ""
		reg[id] = p
	}
	return reg, nil
}

func ReadPath(path string) (pairing.Registry, error) {
	h := handle("ReadPath: %w")
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, h(e)
	}
	defer r.Close()

	reg, e := Read(bufio.NewReader(r))
	if e != nil {
		return nil, h(e)
	}
	return reg, nil
}
