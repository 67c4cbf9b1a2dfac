// Package version carries build-time version information.
package version

import (
	"fmt"
	"runtime"
)

// Set via -ldflags at build time.
//
//nolint:gochecknoglobals // Build-time injection requires package-level variables
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the full version line.
func String() string {
	return fmt.Sprintf("ecc %s (commit %s, built %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
