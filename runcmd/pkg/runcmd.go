package runcmd

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result is the captured output of a finished command. ExitCode is the
// process exit status; callers decide whether non-zero is fatal.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r Result) Ok() bool {
	return r.ExitCode == 0
}

func (r Result) Empty() bool {
	return r.Stdout == "" && r.Stderr == ""
}

type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Exec runs commands with os/exec. Dir, if set, is the working directory.
type Exec struct {
	Dir string
}

// Run waits for the command to exit. The error is non-nil only when the
// command could not be run at all; a non-zero exit is reported in Result.
func (x Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr strings.Builder
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = x.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		res.ExitCode = -1
		return res, fmt.Errorf("Run: %v: %w", name, err)
	}
	return res, nil
}

// Format renders a command line for logs.
func Format(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
