package qiime

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/fqlink/logging/pkg"
	"github.com/jgbaldwinbrown/fqlink/runcmd/pkg"
)

type fakeRunner struct {
	name string
	args []string
	res  runcmd.Result
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (runcmd.Result, error) {
	f.name = name
	f.args = args
	return f.res, nil
}

func TestArgv(t *testing.T) {
	a := NewImportArgs("", "/out/data", "/out/qiime2")
	expect := []string{
		"tools", "import",
		"--type", "SampleData[PairedEndSequencesWithQuality]",
		"--input-path", "/out/data",
		"--output-path", "/out/qiime2/paired-sample-data.qza",
		"--input-format", "CasavaOneEightSingleLanePerSampleDirFmt",
	}
	if out := a.Argv(); !reflect.DeepEqual(out, expect) {
		t.Errorf("out %v != expect %v", out, expect)
	}
	if a.Exe != "qiime" {
		t.Errorf("exe %v != expect qiime", a.Exe)
	}
}

func TestImportLogsOutput(t *testing.T) {
	f := &fakeRunner{res: runcmd.Result{Stdout: "Imported /out/data", Stderr: ""}}
	var b strings.Builder
	res, e := Import(context.Background(), f, NewImportArgs("q2", "/out/data", "/out/qiime2"), logging.New(&b, logging.Debug))
	if e != nil {
		panic(e)
	}
	if f.name != "q2" {
		t.Errorf("ran %v != expect q2", f.name)
	}
	if res.Stdout != "Imported /out/data" {
		t.Errorf("stdout %v", res.Stdout)
	}
	if !strings.Contains(b.String(), "OUT: Imported /out/data") {
		t.Errorf("log %q missing captured output", b.String())
	}
	if e := Check(res); e != nil {
		t.Errorf("Check(%v) = %v", res, e)
	}
}

func TestCheckFailure(t *testing.T) {
	e := Check(runcmd.Result{Stderr: "Plugin error", ExitCode: 1})
	if !errors.Is(e, ErrImportFailed) {
		t.Errorf("error %v is not ErrImportFailed", e)
	}
}
