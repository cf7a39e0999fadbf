package interop

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/runcmd/pkg"
	"github.com/jgbaldwinbrown/lscan/pkg"
)

const (
	DefaultExe = "interop_summary"
	OutName    = "interop_summary.csv"
	Magic      = "# Version"
	MinLen     = 4000
)

var spaceSplit = lscan.ByByte(' ')

// Acceptable reports whether interop_summary printed a real summary rather
// than an error or an empty run.
func Acceptable(out string) bool {
	return strings.HasPrefix(out, Magic) && len(out) > MinLen
}

// Version returns the version token from the "# Version: v1.1.23" header.
func Version(out string) string {
	first, _, _ := strings.Cut(out, "\n")
	var fields []string
	fields = lscan.SplitByFunc(fields, strings.TrimSpace(first), spaceSplit)
	if len(fields) < 3 || fields[0] != "#" {
		return ""
	}
	return fields[2]
}

func write(path, out string) error {
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return e
	}
	bw := bufio.NewWriter(w)
	if _, e := bw.WriteString(out); e != nil {
		w.Close()
		return e
	}
	if e := bw.Flush(); e != nil {
		w.Close()
		return e
	}
	return w.Close()
}

// Summarize runs interop_summary on a run directory and saves its output to
// outdir/interop_summary.csv. Failures are only logged; ok tells whether the
// file was written.
func Summarize(ctx context.Context, r runcmd.Runner, exe, inputdir, outdir string, lg *logging.Logger) (path string, ok bool) {
	if exe == "" {
		exe = DefaultExe
	}
	res, e := r.Run(ctx, exe, inputdir)
	if e != nil {
		lg.Infof("Something went wrong with interop_summary! %v", e)
		return "", false
	}
	if !Acceptable(res.Stdout) {
		lg.Infof("Something went wrong with interop_summary! exit status %v: %v", res.ExitCode, res.Stderr)
		return "", false
	}

	path = filepath.Join(outdir, OutName)
	if e := write(path, res.Stdout); e != nil {
		lg.Infof("Couldn't write the interop_summary file! %v", e)
		return "", false
	}
	lg.Infof("Made the interop_summary file (%v)", Version(res.Stdout))
	return path, true
}

func Describe(path string, ok bool) string {
	if !ok {
		return "no interop summary"
	}
	return fmt.Sprintf("interop summary at %v", path)
}
