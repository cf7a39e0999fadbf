package qiime

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/runcmd/pkg"
)

const (
	DefaultExe   = "qiime"
	ArtifactName = "paired-sample-data.qza"
	ArtifactType = "SampleData[PairedEndSequencesWithQuality]"
	InputFormat  = "CasavaOneEightSingleLanePerSampleDirFmt"
)

var ErrImportFailed = errors.New("qiime tools import failed")

type ImportArgs struct {
	Exe     string
	DataDir string
	OutPath string
	Type    string
	Format  string
}

// NewImportArgs fills in the fixed artifact type and input format, writing
// the artifact into outdir.
func NewImportArgs(exe, datadir, outdir string) ImportArgs {
	if exe == "" {
		exe = DefaultExe
	}
	return ImportArgs{
		Exe:     exe,
		DataDir: datadir,
		OutPath: ArtifactPath(outdir),
		Type:    ArtifactType,
		Format:  InputFormat,
	}
}

func ArtifactPath(outdir string) string {
	return filepath.Join(outdir, ArtifactName)
}

func (a ImportArgs) Argv() []string {
	return []string{
		"tools", "import",
		"--type", a.Type,
		"--input-path", a.DataDir,
		"--output-path", a.OutPath,
		"--input-format", a.Format,
	}
}

// Import runs qiime tools import and logs whatever it printed. The exit code
// is left in the result for the caller to judge.
func Import(ctx context.Context, r runcmd.Runner, a ImportArgs, lg *logging.Logger) (runcmd.Result, error) {
	lg.Debugf("Running %v", runcmd.Format(a.Exe, a.Argv()...))
	res, e := r.Run(ctx, a.Exe, a.Argv()...)
	if e != nil {
		return res, fmt.Errorf("Import: %w", e)
	}
	if !res.Empty() {
		lg.Debugf("OUT: %v\nERR: %v", res.Stdout, res.Stderr)
	}
	return res, nil
}

// Check turns a non-zero import exit into an error wrapping ErrImportFailed.
func Check(res runcmd.Result) error {
	if res.Ok() {
		return nil
	}
	return fmt.Errorf("%w: exit status %v: %v", ErrImportFailed, res.ExitCode, res.Stderr)
}
