// Package version holds build-time version information, populated via
// -ldflags at release time.
package version

import (
	"fmt"
	"runtime"
)

var (
	// GitRelease is the tagged release, or "dev" for untagged builds.
	GitRelease = "dev"
	// GitCommit is the short commit hash the binary was built from.
	GitCommit = "unknown"
	// GitCommitDate is the commit date of GitCommit.
	GitCommitDate = "unknown"
	// GoInfo describes the toolchain and platform used for the build.
	GoInfo = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
)
