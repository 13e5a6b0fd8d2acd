//go:build !windows
// +build !windows

package execwrapper

import (
	"context"
	"strings"

	"github.com/go-kit/kit/log/level"
	"github.com/s-andrews/SeqMonk/pkg/contexts/ctxlog"
	"golang.org/x/sys/unix"
)

// osExec is swapped out in tests.
var osExec = unix.Exec

// Exec replaces the current process image with argv0. It only
// returns if the replacement failed, and the error is the one the
// kernel reported.
func Exec(ctx context.Context, argv0 string, argv []string, envv []string) error {
	logger := ctxlog.FromContext(ctx)

	level.Debug(logger).Log(
		"msg", "exec",
		"path", argv0,
		"cmd", strings.Join(argv, " "),
	)

	return osExec(argv0, argv, envv)
}
