// Package execwrapper provides an Exec method that should work on
// posix or windows systems.
//
// Windows does not support exec. There, Exec runs the target as a
// child, waits for it, and exits with the child's exit code.
package execwrapper
