package sampleid

import (
	"path/filepath"
	"strings"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Prefix returns the first IDLen bytes of the basename, or the whole basename
// if it is shorter.
func (c Convention) Prefix(path string) string {
	base := filepath.Base(path)
	if len(base) < c.IDLen {
		return base
	}
	return base[:c.IDLen]
}

func (c Convention) validPrefix(prefix string) bool {
	if len(prefix) < c.IDLen {
		return false
	}
	fields := strings.Split(prefix, c.Sep)
	if len(fields) != 3 {
		return false
	}
	return isDigits(fields[0]) && fields[1] == c.Tag && isDigits(fields[2])
}

// Valid reports whether path's basename starts with a well-formed sample ID.
// Invalid names are reported as a warning on lg.
func (c Convention) Valid(path string, lg *logging.Logger) bool {
	prefix := c.Prefix(path)
	if c.validPrefix(prefix) {
		return true
	}
	lg.Warnf("ID for %v is not a valid OLC ID", prefix)
	return false
}

func (c Convention) ID(path string, lg *logging.Logger) (string, bool) {
	if !c.Valid(path, lg) {
		return "", false
	}
	return c.Prefix(path), true
}
