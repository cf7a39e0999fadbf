package runcmd

import (
	"context"
	"os/exec"
	"testing"
)

func needSh(t *testing.T) {
	if _, e := exec.LookPath("sh"); e != nil {
		t.Skip("no sh on PATH")
	}
}

func TestExecCaptures(t *testing.T) {
	needSh(t)
	res, e := Exec{}.Run(context.Background(), "sh", "-c", "echo out; echo err 1>&2")
	if e != nil {
		panic(e)
	}
	if res.Stdout != "out\n" || res.Stderr != "err\n" || !res.Ok() {
		t.Errorf("res %+v != expect out/err/0", res)
	}
}

func TestExecExitCode(t *testing.T) {
	needSh(t)
	res, e := Exec{}.Run(context.Background(), "sh", "-c", "echo bad 1>&2; exit 3")
	if e != nil {
		t.Fatalf("non-zero exit returned error %v", e)
	}
	if res.ExitCode != 3 || res.Ok() {
		t.Errorf("exit code %v != expect 3", res.ExitCode)
	}
	if res.Stderr != "bad\n" {
		t.Errorf("stderr %q != expect bad", res.Stderr)
	}
}

func TestExecMissing(t *testing.T) {
	res, e := Exec{}.Run(context.Background(), "fqlink-no-such-command-anywhere")
	if e == nil {
		t.Errorf("no error for missing command")
	}
	if res.ExitCode != -1 {
		t.Errorf("exit code %v != expect -1", res.ExitCode)
	}
}

func TestFormat(t *testing.T) {
	out := Format("qiime", "tools", "import")
	if out != "qiime tools import" {
		t.Errorf("out %v != expect qiime tools import", out)
	}
}
