//go:build windows
// +build windows

package launch

const TargetName = "seqmonk.exe"
