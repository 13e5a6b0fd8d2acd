//go:build windows
// +build windows

package execwrapper

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/s-andrews/SeqMonk/pkg/contexts/ctxlog"
)

func Exec(ctx context.Context, argv0 string, argv []string, envv []string) error {
	logger := ctxlog.FromContext(ctx)

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}

	// CommandContext would kill the child on cancel. Nothing cancels us,
	// and the child should outlive any context anyway.
	cmd := exec.Command(argv0, args...)
	cmd.Env = envv

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	level.Debug(logger).Log(
		"msg", "preparing to run command",
		"cmd", strings.Join(cmd.Args, " "),
	)

	// This is faking exec, so we need to distinguish between a failure
	// to start, and a failure in the called program.
	err := cmd.Run()

	if cmd.ProcessState == nil || cmd.ProcessState.ExitCode() == -1 {
		if err == nil {
			return fmt.Errorf("unknown error trying to exec %s (and nil err)", argv0)
		}
		return unwrapExecError(err)
	}

	if err != nil {
		level.Debug(logger).Log(
			"msg", "got error on exec",
			"err", err,
		)
	}

	os.Exit(cmd.ProcessState.ExitCode())
	return errors.New("exec shouldn't have gotten here")
}

// unwrapExecError strips the *exec.Error and *os.PathError layers so the
// message matches what the posix exec reports.
func unwrapExecError(err error) error {
	if execErr, ok := err.(*exec.Error); ok {
		err = execErr.Err
	}
	if pathErr, ok := err.(*os.PathError); ok {
		err = pathErr.Err
	}
	return err
}
