// Package version contains the tweakstack version number, in its own package
// so that both library code and the command-line tool can reference it.
package version

// Version is the tweakstack version string.
const Version = "1.0.0"
