package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
)

var ErrUnpaired = errors.New("sample has no reverse read")

// LinkOne links target into dir under its own basename.
func LinkOne(target, dir string) error {
	return os.Symlink(target, filepath.Join(dir, filepath.Base(target)))
}

// LinkPair links both reads of a pair into dir. A failed forward link stops
// before the reverse read; nothing already created is removed.
func LinkPair(pair pairing.ReadPair, dir string) error {
	if !pair.HasReverse {
		return ErrUnpaired
	}
	if e := LinkOne(pair.Forward, dir); e != nil {
		return e
	}
	if e := LinkOne(pair.Reverse, dir); e != nil {
		return e
	}
	return nil
}

// Materialize links every sample in reg into dest and returns how many
// samples were linked. Per-sample failures are logged and skipped.
func Materialize(reg pairing.Registry, dest string, lg *logging.Logger) (int, error) {
	info, e := os.Stat(dest)
	if e != nil {
		return 0, fmt.Errorf("Materialize: %w", e)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("Materialize: %v is not a directory", dest)
	}

	lg.Infof("Creating symlinks for samples at %v", dest)
	linked := 0
	for _, id := range reg.IDs() {
		pair := reg[id]
		if !pair.HasReverse {
			lg.Errorf("Read pair %v has no reverse read; not linking it", id)
			continue
		}
		if e := LinkPair(pair, dest); e != nil {
			lg.Errorf("Symbolic links to read pair %v already exist: %v", id, e)
			continue
		}
		lg.Debugf("Created symlinks for %v", id)
		linked++
	}
	return linked, nil
}
