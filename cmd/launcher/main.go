package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/kolide/kit/logutil"
	"github.com/kolide/kit/version"
	"github.com/s-andrews/SeqMonk/pkg/contexts/ctxlog"
	"github.com/s-andrews/SeqMonk/pkg/launch"
)

// debugLogging is set at build time with
// -ldflags "-X main.debugLogging=true". The launcher has no flags or
// environment of its own, everything on the command line belongs to
// seqmonk.
var debugLogging string

func main() {
	logger := newLogger(debugLogging)
	ctx := ctxlog.NewContext(context.Background(), logger)

	v := version.Version()
	level.Debug(logger).Log(
		"msg", "seqmonk launcher starting",
		"version", v.Version,
		"revision", v.Revision,
		"build_date", v.BuildDate,
	)

	req := launch.FromOS(ctx)

	err := launch.Launch(ctx, req)

	// exec only returns on failure
	level.Debug(logger).Log(
		"msg", "launch failed",
		"target", req.TargetPath,
		"err", err,
		"stack", fmt.Sprintf("%+v", err),
	)
	fmt.Fprintln(os.Stderr, failureMessage(err))
	os.Exit(1)
}

func newLogger(debugSetting string) log.Logger {
	debug, err := strconv.ParseBool(debugSetting)
	if err != nil {
		debug = false
	}
	return logutil.NewCLILogger(debug)
}

func failureMessage(err error) string {
	return fmt.Sprintf("Error launching %s: %v", launch.DisplayName, err)
}
