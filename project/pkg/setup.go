package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jgbaldwinbrown/fqlink/interop/pkg"
	"github.com/jgbaldwinbrown/fqlink/layout/pkg"
	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/manifest/pkg"
	"github.com/jgbaldwinbrown/fqlink/pairing/pkg"
	"github.com/jgbaldwinbrown/fqlink/qiime/pkg"
	"github.com/jgbaldwinbrown/fqlink/runcmd/pkg"
	"github.com/jgbaldwinbrown/fqlink/sampleid/pkg"
)

const (
	DataDir  = "data"
	QiimeDir = "qiime2"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

type Options struct {
	Convention sampleid.Convention
	Policy     pairing.Policy

	QiimeExe   string
	Interop    bool
	InteropExe string

	Runner runcmd.Runner
	Log    *logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Convention.Name == "" {
		o.Convention = sampleid.OLC
	}
	if o.Runner == nil {
		o.Runner = runcmd.Exec{}
	}
	if o.Log == nil {
		o.Log = logging.Discard()
	}
	return o
}

// Layout names the directories of one analysis folder.
type Layout struct {
	Root  string
	Data  string
	Qiime string
}

func NewLayout(outdir string) Layout {
	return Layout{
		Root:  outdir,
		Data:  filepath.Join(outdir, DataDir),
		Qiime: filepath.Join(outdir, QiimeDir),
	}
}

// Create makes the analysis folder. It fails if the folder already exists.
func (l Layout) Create() error {
	for _, dir := range []string{l.Root, l.Data, l.Qiime} {
		if e := os.Mkdir(dir, 0755); e != nil {
			return e
		}
	}
	return nil
}

// Setup builds a QIIME 2 analysis folder at outdir from the reads in
// inputdir and returns the path of the imported sample data artifact.
// Nothing is cleaned up on failure.
func Setup(ctx context.Context, outdir, inputdir string, o Options) (string, error) {
	h := handle("Setup: %w")
	o = o.withDefaults()
	lg := o.Log

	l := NewLayout(outdir)
	if e := l.Create(); e != nil {
		return "", h(e)
	}
	lg.Debugf("Created QIIME2 analysis folder: %v", outdir)

	reg, e := pairing.BuildRegistry(inputdir, o.Convention, o.Policy, lg)
	if e != nil {
		return "", h(e)
	}
	lg.Debugf("Sample Dictionary: %v", reg)
	if len(reg) == 0 {
		lg.Warnf("No valid OLC read pairs found in %v", inputdir)
	}

	if _, e := layout.Materialize(reg, l.Data, lg); e != nil {
		return "", h(e)
	}
	if _, e := layout.Normalize(l.Data, o.Convention, lg); e != nil {
		return "", h(e)
	}
	if e := manifest.WritePath(filepath.Join(l.Root, manifest.Name), reg); e != nil {
		return "", h(e)
	}

	lg.Infof("Creating sample data artifact for QIIME 2...")
	args := qiime.NewImportArgs(o.QiimeExe, l.Data, l.Qiime)
	res, e := qiime.Import(ctx, o.Runner, args, lg)
	if e != nil {
		return "", h(e)
	}
	if e := qiime.Check(res); e != nil {
		return "", h(e)
	}
	lg.Infof("Successfully created QIIME 2 data Artifact")

	if o.Interop {
		path, ok := interop.Summarize(ctx, o.Runner, o.InteropExe, inputdir, l.Root, lg)
		lg.Debugf("%v", interop.Describe(path, ok))
	}

	return args.OutPath, nil
}
