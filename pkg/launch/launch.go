// Package launch finds the seqmonk binary installed next to the running
// executable and replaces the current process with it.
package launch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/kit/log/level"
	"github.com/kardianos/osext"
	"github.com/pkg/errors"
	"github.com/s-andrews/SeqMonk/pkg/contexts/ctxlog"
	"github.com/s-andrews/SeqMonk/pkg/execwrapper"
)

// DisplayName names the target in user facing messages, regardless of
// any platform suffix on TargetName.
const DisplayName = "seqmonk"

// execFunc is swapped out in tests.
var execFunc = execwrapper.Exec

// Request is a single launch. It is built once at startup and consumed
// by Launch.
type Request struct {
	// Args are the launcher's own arguments, minus the program name,
	// passed through untouched.
	Args []string

	// SelfPath is the absolute path of the running executable. Empty
	// when it could not be determined.
	SelfPath string

	// TargetPath is where the target binary is expected to be.
	TargetPath string
}

// NewRequest builds a Request from an argument vector (as in os.Args)
// and the launcher's own path, which may be empty.
func NewRequest(osArgs []string, selfPath string) Request {
	return Request{
		Args:       Args(osArgs),
		SelfPath:   selfPath,
		TargetPath: TargetPath(selfPath),
	}
}

// FromOS builds the Request for the current process. Failing to locate
// ourselves is not fatal, the target is then looked for in the working
// directory.
func FromOS(ctx context.Context) Request {
	logger := ctxlog.FromContext(ctx)

	selfPath, err := SelfPath()
	if err != nil {
		level.Debug(logger).Log(
			"msg", "could not locate own executable, using working directory",
			"err", err,
		)
		selfPath = ""
	}

	req := NewRequest(os.Args, selfPath)
	level.Debug(logger).Log(
		"msg", "built launch request",
		"self", req.SelfPath,
		"target", req.TargetPath,
		"args", fmt.Sprintf("%q", req.Args),
	)
	return req
}

// SelfPath returns the absolute path of the running executable.
func SelfPath() (string, error) {
	path, err := osext.Executable()
	if err != nil {
		return "", errors.Wrap(err, "finding own executable")
	}
	if path == "" {
		return "", errors.New("finding own executable: empty path")
	}
	return path, nil
}

// TargetPath returns the path of the target binary for a launcher at
// selfPath. An empty selfPath yields a path relative to the working
// directory. The leading "." is kept so the result is never a bare
// name that could be resolved against PATH.
func TargetPath(selfPath string) string {
	if selfPath == "" {
		return "." + string(filepath.Separator) + TargetName
	}
	return filepath.Join(filepath.Dir(selfPath), TargetName)
}

// Args returns the arguments after the program name, in order, as a
// new slice.
func Args(osArgs []string) []string {
	if len(osArgs) < 2 {
		return []string{}
	}
	args := make([]string, len(osArgs)-1)
	copy(args, osArgs[1:])
	return args
}

// Argv is the argument vector handed to exec: the target path followed
// by the forwarded arguments.
func (r Request) Argv() []string {
	argv := make([]string, 0, len(r.Args)+1)
	argv = append(argv, r.TargetPath)
	return append(argv, r.Args...)
}

// Launch replaces the current process with the target. It does not
// return on success.
func Launch(ctx context.Context, r Request) error {
	if err := execFunc(ctx, r.TargetPath, r.Argv(), os.Environ()); err != nil {
		return errors.Wrapf(err, "exec %s", r.TargetPath)
	}
	// Only the windows fallback can get here, and it exits first.
	return errors.Errorf("exec %s returned without error", r.TargetPath)
}
