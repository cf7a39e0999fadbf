package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/sampleid/pkg"
)

// BarcodeName inserts the dummy barcode in front of the first lane marker of
// a basename. ok is false when there is no lane marker or the barcode is
// already present.
func BarcodeName(base string, c sampleid.Convention) (string, bool) {
	if strings.Contains(base, c.BarcodeInsert()+c.Lane) {
		return base, false
	}
	i := strings.Index(base, c.Lane)
	if i < 0 {
		return base, false
	}
	return base[:i] + c.BarcodeInsert() + base[i:], true
}

// Normalize renames the valid read files in dest so they carry a dummy
// barcode field, as the Casava 1.8 single-lane layout requires. Link targets
// are unchanged. Returns the number of files renamed.
func Normalize(dest string, c sampleid.Convention, lg *logging.Logger) (int, error) {
	paths, e := sampleid.ListReads(dest, c)
	if e != nil {
		return 0, fmt.Errorf("Normalize: %w", e)
	}

	renamed := 0
	for _, path := range paths {
		if !c.Valid(path, lg) {
			continue
		}
		base := filepath.Base(path)
		newbase, ok := BarcodeName(base, c)
		if !ok {
			lg.Debugf("Leaving %v as is", base)
			continue
		}
		newpath := filepath.Join(filepath.Dir(path), newbase)
		if _, e := os.Lstat(newpath); e == nil {
			lg.Errorf("Cannot rename %v: %v already exists", base, newbase)
			continue
		}
		if e := os.Rename(path, newpath); e != nil {
			lg.Errorf("Cannot rename %v: %v", base, e)
			continue
		}
		renamed++
	}
	lg.Infof("Added dummy barcodes to all valid OLC %v files in %v", c.Glob, dest)
	return renamed, nil
}
