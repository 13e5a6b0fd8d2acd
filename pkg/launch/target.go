//go:build !windows
// +build !windows

package launch

// TargetName is the file name of the application binary that sits next
// to the launcher.
const TargetName = "seqmonk"
