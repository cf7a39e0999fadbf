package sampleid

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

// ListReads returns the absolute paths of the read files directly inside dir.
func ListReads(dir string, c Convention) ([]string, error) {
	h := handle("ListReads: %w")

	abs, e := filepath.Abs(dir)
	if e != nil {
		return nil, h(e)
	}
	paths, e := filepath.Glob(filepath.Join(abs, c.Glob))
	if e != nil {
		return nil, h(e)
	}
	sort.Strings(paths)
	return paths, nil
}

// UniqueIDs extracts the distinct valid sample IDs from paths.
func UniqueIDs(paths []string, c Convention, lg *logging.Logger) []string {
	lg.Infof("Scanning for valid OLC sample IDs")
	seen := map[string]struct{}{}
	for _, path := range paths {
		if id, ok := c.ID(path, lg); ok {
			seen[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Discover returns the distinct valid sample IDs among the read files in dir.
// An empty directory gives an empty result, not an error.
func Discover(dir string, c Convention, lg *logging.Logger) ([]string, error) {
	paths, e := ListReads(dir, c)
	if e != nil {
		return nil, fmt.Errorf("Discover: %w", e)
	}
	return UniqueIDs(paths, c, lg), nil
}
