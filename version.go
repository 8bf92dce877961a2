// Package abacus holds the release version of the calculator pad.
package abacus

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// Release numbers are plain SemVer 2.0.0 without the leading "v".
var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var release string

// Version returns the release number, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(release)
}

// Banner is the line printed by `abacus -version`.
func Banner() string {
	return fmt.Sprintf("abacus v%s (%s %s/%s)", Version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// ValidRelease reports whether v is a release number.
func ValidRelease(v string) bool {
	return releaseRE.MatchString(strings.TrimSpace(v))
}
